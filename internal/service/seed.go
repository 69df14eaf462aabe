package service

import "vocabdeck/internal/domain"

// seedWords is the collection a new learner starts with
var seedWords = []domain.WordStub{
	{Word: "acquire", Phonetic: "əˈkwaɪər", Definition: "To gain possession of something.", ChineseDefinition: "獲得，取得", ExampleSentence: "The company plans to acquire several smaller firms this year."},
	{Word: "allocate", Phonetic: "ˈæləˌkeɪt", Definition: "To distribute for a particular purpose.", ChineseDefinition: "分配，配置", ExampleSentence: "The manager will allocate resources for the new project."},
	{Word: "agenda", Phonetic: "əˈdʒɛndə", Definition: "A list of items to be discussed at a meeting.", ChineseDefinition: "議程", ExampleSentence: "Please review the agenda before our conference call."},
	{Word: "audit", Phonetic: "ˈɔdɪt", Definition: "An official inspection of an organization's accounts.", ChineseDefinition: "審計，查帳", ExampleSentence: "An external firm will conduct the annual financial audit."},
	{Word: "benchmark", Phonetic: "ˈbɛntʃˌmɑrk", Definition: "A standard against which things may be compared.", ChineseDefinition: "基準，標準", ExampleSentence: "Our new product's performance set a new industry benchmark."},
	{Word: "collaborate", Phonetic: "kəˈlæbəˌreɪt", Definition: "To work jointly on an activity.", ChineseDefinition: "合作", ExampleSentence: "The marketing and sales teams will collaborate on the campaign."},
	{Word: "delegate", Phonetic: "ˈdɛləˌɡeɪt", Definition: "To entrust a task or responsibility to another person.", ChineseDefinition: "委派，授權", ExampleSentence: "A good leader knows when to delegate tasks."},
	{Word: "leverage", Phonetic: "ˈlɛvərɪdʒ", Definition: "To use something to maximum advantage.", ChineseDefinition: "利用", ExampleSentence: "We can leverage our brand recognition to enter new markets."},
	{Word: "negotiate", Phonetic: "nəˈɡoʊʃiˌeɪt", Definition: "To have a formal discussion to reach an agreement.", ChineseDefinition: "協商，談判", ExampleSentence: "They were able to negotiate a favorable contract."},
	{Word: "outsource", Phonetic: "ˈaʊtˌsɔrs", Definition: "To obtain goods or a service from an outside supplier.", ChineseDefinition: "外包", ExampleSentence: "Many companies outsource their customer support services."},
	{Word: "recruit", Phonetic: "rɪˈkrut", Definition: "To enlist someone as a new employee.", ChineseDefinition: "招募", ExampleSentence: "We need to recruit a new software developer for the team."},
	{Word: "streamline", Phonetic: "ˈstrimˌlaɪn", Definition: "To make an organization or system more efficient.", ChineseDefinition: "簡化，使效率更高", ExampleSentence: "The new software will help streamline our workflow."},
	{Word: "incentive", Phonetic: "ɪnˈsɛntɪv", Definition: "A thing that motivates or encourages one to do something.", ChineseDefinition: "激勵，誘因", ExampleSentence: "The company offers a performance bonus as an incentive."},
	{Word: "itinerary", Phonetic: "aɪˈtɪnəˌrɛri", Definition: "A planned route or journey.", ChineseDefinition: "行程表", ExampleSentence: "The travel agent sent over the detailed itinerary for our business trip."},
	{Word: "liability", Phonetic: "ˌlaɪəˈbɪləti", Definition: "The state of being legally responsible for something.", ChineseDefinition: "責任，負債", ExampleSentence: "The company has a significant liability for its debts."},
}

// SeedWords returns a copy of the built-in starter list
func SeedWords() []domain.WordStub {
	return append([]domain.WordStub(nil), seedWords...)
}
