package ai

import (
	"fmt"
	"strings"
)

const jsonInstructions = "You are a TOEIC learning assistant for Traditional Chinese (繁體中文) speakers. Reply with JSON only, matching the provided schema."

const textInstructions = "You are a TOEIC learning assistant for Traditional Chinese (繁體中文) speakers. Reply with plain text only, without Markdown."

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func defineWordPrompt(word string) string {
	return fmt.Sprintf(`For the English word "%s", provide its phonetic transcription (IPA), a simple English definition, a Traditional Chinese (繁體中文) definition, and an example sentence.`, word)
}

func generateWordsPrompt(exclude []string, count int) string {
	return fmt.Sprintf(`Generate %d new high-frequency and commonly used intermediate-level TOEIC vocabulary words. These should be words that frequently appear on the TOEIC test. Do NOT include any of the following words: %s. For each word, provide its phonetic transcription (IPA), a concise English definition, a Traditional Chinese (繁體中文) definition, and a simple example sentence.`, count, joinOrNone(exclude))
}

func explainSentencePrompt(word, sentence string) string {
	return fmt.Sprintf("針對多益單字 \"%s\"，請用繁體中文「簡潔扼要」地解釋它在以下例句中的用法與文法重點。如果句子中有特殊的俚語或用法，請特別說明。\n\n例句：'%s'\n\n你的輸出必須是純文字，不包含任何 Markdown 格式。", word, sentence)
}

func moreExamplesPrompt(word, existing string) string {
	return fmt.Sprintf(`Generate 3 new and distinct example sentences for the TOEIC vocabulary word "%s". The sentences should be suitable for English learners. Do not repeat the existing example: "%s".`, word, existing)
}

func similarWordPrompt(word string) string {
	return fmt.Sprintf(`Find one common and easily confused word similar to the English word "%s". Provide its phonetic (IPA), English definition, an example sentence, and a "usage difference" (用法區別) in Traditional Chinese comparing it with "%s".`, word, word)
}

func wordStructurePrompt(word string) string {
	return fmt.Sprintf(`Analyze the structure of the English word "%s" into its prefix, root, and suffix. For each part that exists, provide the part itself and its meaning in Traditional Chinese. If a part doesn't exist, use empty strings for both its part and meaning.`, word)
}

func writingFeedbackPrompt(word, sentence string) string {
	return fmt.Sprintf("Act as an English writing coach. The user is practicing the word \"%s\".\nPlease review their sentence: \"%s\".\nProvide concise feedback in Traditional Chinese, focusing on grammar, word choice, and naturalness. If the sentence is good, praise it and perhaps suggest a more advanced alternative. Your output must be pure text.", word, sentence)
}

func topicPackPrompt(topic string, existingTitles []string) string {
	return fmt.Sprintf(`Generate a business English learning pack for the topic "%s". Do not use a title from this list of existing packs: %s. The pack must include:
1. An engaging 'title' in English.
2. A corresponding 'chineseTitle' in Traditional Chinese.
3. A short 'description' in Traditional Chinese.
4. A 'words' array of 5-7 relevant vocabulary words, each with phonetic (IPA), English definition, Traditional Chinese definition, and an example sentence.
5. A 'dialogue' array representing a short conversation between two speakers (e.g., Mark, Sarah) that naturally uses most of these vocabulary words. Each entry has a 'speaker', the English 'line', and a Traditional Chinese 'translation'.`, topic, joinOrNone(existingTitles))
}

func groupTitlePrompt(titles []string) string {
	return fmt.Sprintf(`Given the following list of business English learning pack titles: "%s". Generate a single, concise, and appealing group title in Traditional Chinese (繁體中文) that summarizes them all. The title should be 4-8 characters long. Your output must be the title text only, without any quotes or extra formatting.`, strings.Join(titles, `", "`))
}

func dailySlangPrompt(exclude []string) string {
	return fmt.Sprintf(`Generate a popular, interesting, and modern English slang word or phrase. Do NOT include any of the following words: %s. Provide its phonetic transcription (IPA), a main definition in Traditional Chinese (繁體中文), an English example sentence, the Traditional Chinese translation for the example sentence, and a "trivia" (小知識) section in Traditional Chinese about its origin or usage.`, joinOrNone(exclude))
}

func dailyGrammarPrompt(exclude []string) string {
	return fmt.Sprintf(`Generate a daily grammar lesson for a TOEIC learner (B1-B2 level). Do NOT use any of the following topics: %s. The lesson must include:
1. A concise 'topic' in English (e.g., "Present Perfect vs. Past Simple").
2. A clear 'explanation' in Traditional Chinese (繁體中文).
3. An array of 3 'examples' sentences in English.
4. A 'quiz' array of 2-3 fill-in-the-blank multiple-choice questions. Each question has a 'question' sentence with a blank (___), an array of 4 string 'options', the 'correctAnswer' string, and a clear 'explanation' in Traditional Chinese.`, joinOrNone(exclude))
}

func dailyQuotePrompt(exclude []string) string {
	return fmt.Sprintf(`Generate an inspiring and famous quote suitable for a language learner. Do NOT use a quote from any of the following authors: %s. The quote should be in English. Provide the quote, the author's name, the author's name translated into Traditional Chinese (繁體中文), and a corresponding Traditional Chinese translation of the quote.`, joinOrNone(exclude))
}

const readingTestPrompt = `Generate a reading comprehension test for a TOEIC learner at the B1-B2 level. The test must include:
1. An engaging 'title' for the article.
2. A short 'article' of about 200-250 words on a business or daily life topic.
3. An array of 3 multiple-choice 'questions' based on the article.
4. A 'vocabulary' array of 5-7 key words or phrases from the article that are useful for TOEIC.

For each question, provide the 'question' text, an array of 4 string 'options', the 'correctAnswerIndex' (0-3), and a clear 'explanation' in Traditional Chinese (繁體中文) for why the correct answer is right.

For each vocabulary item, provide the 'wordOrPhrase' itself, a concise 'definition' in Traditional Chinese (繁體中文), and the 'example' sentence from the article where it appears.`

// PlanInput summarises the learner's state for study plan generation
type PlanInput struct {
	TotalWords int
	DueWords   []string
	WeakWords  []string
}

const planPreviewWords = 5

func preview(words []string) string {
	if len(words) > planPreviewWords {
		words = words[:planPreviewWords]
	}
	return strings.Join(words, ", ")
}

func studyPlanPrompt(in PlanInput) string {
	var status strings.Builder
	fmt.Fprintf(&status, "The user has %d total words in their vocabulary.\n", in.TotalWords)
	if len(in.DueWords) > 0 {
		fmt.Fprintf(&status, "- They have %d words due for review today: %s.\n", len(in.DueWords), preview(in.DueWords))
	} else {
		status.WriteString("- They have completed all their reviews for today.\n")
	}
	if len(in.WeakWords) > 0 {
		fmt.Fprintf(&status, "- They have %d weak words (low familiarity): %s.\n", len(in.WeakWords), preview(in.WeakWords))
	}

	return fmt.Sprintf(`Act as a friendly and motivational TOEIC learning coach. Based on the user's current progress, create a personalized study plan for today with 3-4 actionable tasks.

User's status:
%s
The plan should include:
1. A creative and encouraging 'planTitle' in Traditional Chinese.
2. An array of 3-4 'tasks'. Each task must have:
   - 'id': A unique string identifier for the task (e.g., "review_flashcards").
   - 'title': The task title in Traditional Chinese.
   - 'description': A brief task description in Traditional Chinese.
   - 'actionType': Choose from: 'flashcard', 'reading-comprehension', 'topic-learning', 'daily-grammar', 'writing-practice'.
   - 'icon': Choose from: 'flashcard', 'reading', 'topic', 'quiz', 'writing'.
   - 'isCompleted': Must be false.

Prioritize tasks based on the user's needs. If there are words to review, a 'flashcard' task is essential. If there are many weak words, suggest 'writing-practice' with them. If the user is doing well, suggest a new 'topic-learning' or 'reading-comprehension'. Be creative and vary the plan.`, status.String())
}
