package unihan

// Radicals is the subset of Kangxi radicals shipped with the database.
var Radicals = []Radical{
	{1, "一", 1, "one", "yī"},
	{9, "人", 2, "person", "rén"},
	{18, "刀", 2, "knife", "dāo"},
	{30, "口", 3, "mouth", "kǒu"},
	{32, "土", 3, "earth", "tǔ"},
	{40, "宀", 3, "roof", "mián"},
	{46, "山", 3, "mountain", "shān"},
	{61, "心", 4, "heart", "xīn"},
	{64, "手", 4, "hand", "shǒu"},
	{72, "日", 4, "sun", "rì"},
	{75, "木", 4, "tree", "mù"},
	{85, "水", 4, "water", "shuǐ"},
	{86, "火", 4, "fire", "huǒ"},
	{94, "犬", 4, "dog", "quǎn"},
	{109, "目", 5, "eye", "mù"},
	{118, "竹", 6, "bamboo", "zhú"},
	{120, "糸", 6, "silk", "sī"},
	{140, "艸", 6, "grass", "cǎo"},
	{149, "言", 7, "speech", "yán"},
	{162, "辵", 7, "walk", "chuò"},
	{167, "金", 8, "metal", "jīn"},
	{184, "食", 9, "food", "shí"},
}
