package domain

// DialogueLine is one turn of a topic pack conversation
type DialogueLine struct {
	Speaker     string `json:"speaker"`
	Line        string `json:"line"`
	Translation string `json:"translation"`
}

// TopicPack is a themed bundle of word stubs with a scripted dialogue.
// Its words join the main collection only when the learner asks.
type TopicPack struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	ChineseTitle string         `json:"chineseTitle"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Words        []WordStub     `json:"words"`
	Dialogue     []DialogueLine `json:"dialogue"`
}

// UncategorizedTopic groups packs stored without a category
const UncategorizedTopic = "Uncategorized"

// CategoryOrDefault returns the pack category, falling back for older data
func (p TopicPack) CategoryOrDefault() string {
	if p.Category == "" {
		return UncategorizedTopic
	}
	return p.Category
}

// SuggestedTopic is a ready-made topic offered for pack generation
type SuggestedTopic struct {
	Name    string
	English string
}

// SuggestedTopics are offered before the learner types their own
var SuggestedTopics = []SuggestedTopic{
	{Name: "商務會議", English: "Business Meetings"},
	{Name: "辦公室溝通", English: "Office Communication"},
	{Name: "行銷與廣告", English: "Marketing & Advertising"},
	{Name: "財務與會計", English: "Finance & Accounting"},
	{Name: "機場商旅", English: "Business Travel"},
	{Name: "合約談判", English: "Contract Negotiations"},
	{Name: "客戶服務", English: "Customer Service"},
	{Name: "產品開發", English: "Product Development"},
}

// CategoryDisplayName returns the Chinese name of a suggested category,
// or the category itself
func CategoryDisplayName(category string) string {
	for _, t := range SuggestedTopics {
		if t.English == category {
			return t.Name
		}
	}
	return category
}
