package constant

// Chat roles understood by the completion providers.
const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"
)

// Study options selectable by the client. Anything else falls back to the
// generic analyze instruction.
const (
	StudyOptionFlashcards = "flashcards"
	StudyOptionSummarize  = "summarize"
	StudyOptionQuiz       = "quiz"
	StudyOptionOther      = "other"
)

const FlashcardsInstruction = `Create a set of flashcards from the following study material. Respond with a JSON array of objects, each with a "front" field (the question or term) and a "back" field (the answer or definition).`

const SummarizeInstruction = `Write a clear, well-structured summary of the following study material. Cover every major topic and keep the original order of ideas.`

// QuizInstruction mandates the exact output shape the quiz renderer
// parses: four lettered options per question and a trailing answer key.
const QuizInstruction = `Create a multiple-choice quiz from the following study material. Every question MUST have exactly four options labeled A), B), C) and D). After the last question, add an answer key that starts with the line **Answers:** followed by one numbered line per question in the format "N. LETTER) answer text". Do not deviate from this format.`

// QuizSystemInstruction repeats the formatting constraints as a system
// turn to raise compliance.
const QuizSystemInstruction = `You are a quiz generator. Always produce multiple-choice questions with exactly four options labeled A) through D), and always end with an answer key beginning with **Answers:** listing one "N. LETTER) answer text" line per question.`

const AnalyzeInstruction = `Analyze the following study material and explain its key points, important terms and main takeaways.`
