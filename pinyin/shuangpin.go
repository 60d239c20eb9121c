package pinyin

// shuangpinTable holds one keyboard layout's two-key encoding rules.
//
// A shuangpin code is always exactly two ASCII letters: the first encodes
// the initial (consonant, or a placeholder for zero-consonant syllables),
// the second encodes the final (vowel group). Different layouts disagree
// on which key represents which final, and on how zero-consonant syllables
// ("a", "ai", "ang", ...) are spelled; each layout supplies its own rule.
type shuangpinTable struct {
	name      string
	initials map[string]byte   // pinyin initial ("" for none) -> key letter
	finals   map[string]byte   // pinyin final -> key letter
	zeroCons map[string]string // full zero-consonant syllable -> 2-letter code
}

// encode renders syllable as this layout's two-letter code. Every syllable
// the pinyin.Dictionary can produce has a defined code: unmapped finals
// fall back to their own first letter, which keeps the "exactly two ASCII
// letters" invariant even for table gaps.
func (t *shuangpinTable) encode(s Syllable) string {
	if s.Initial == "" {
		if code, ok := t.zeroCons[s.Base]; ok {
			return code
		}
		// Zero-consonant syllable this layout didn't special-case: use the
		// conventional "double the vowel key" fallback.
		fk := t.finalKey(s.Final)
		return string([]byte{fk, fk})
	}
	ik, ok := t.initials[s.Initial]
	if !ok {
		ik = s.Initial[0]
	}
	fk := t.finalKey(s.Final)
	return string([]byte{ik, fk})
}

func (t *shuangpinTable) finalKey(final string) byte {
	if final == "" {
		// Consonant-only syllable (e.g. "m", "n", "ng" as interjections).
		return 'o'
	}
	if k, ok := t.finals[final]; ok {
		return k
	}
	return final[0]
}

// Xiaohe (小鹤双拼) is the most widely adopted community layout; its final
// table is reproduced here from its published key chart.
var shuangpinXiaohe = shuangpinTable{
	name: "xiaohe",
	initials: map[string]byte{
		"zh": 'v', "ch": 'i', "sh": 'u',
		"b": 'b', "p": 'p', "m": 'm', "f": 'f', "d": 'd', "t": 't',
		"n": 'n', "l": 'l', "g": 'g', "k": 'k', "h": 'h',
		"j": 'j', "q": 'q', "x": 'x', "r": 'r', "z": 'z', "c": 'c',
		"s": 's', "y": 'y', "w": 'w',
	},
	finals: map[string]byte{
		"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
		"ai": 'd', "ei": 'w', "ao": 'c', "ou": 'z',
		"an": 'j', "en": 'f', "ang": 'h', "eng": 'g',
		"in": 'b', "ing": 'k', "ong": 's', "iong": 's',
		"ia": 'x', "ua": 'x', "ie": 'p', "ve": 't', "ue": 't', "uo": 'o',
		"iao": 'n', "uai": 'k', "ian": 'm', "uan": 'r', "van": 'r',
		"iang": 'l', "uang": 'l', "iu": 'q', "ui": 'v', "un": 'y', "vn": 'y',
		"er": 'r',
	},
	zeroCons: map[string]string{
		"a": "aa", "ai": "ai", "an": "an", "ang": "ah",
		"ao": "ao", "e": "ee", "ei": "ei", "en": "en",
		"eng": "eg", "er": "er", "o": "oo", "ou": "ou",
	},
}

// ShuangpinABC is the "Smart ABC" / Zhineng ABC layout.
var shuangpinABC = shuangpinTable{
	name: "abc",
	initials: map[string]byte{
		"zh": 'a', "ch": 'e', "sh": 'v',
		"b": 'b', "p": 'p', "m": 'm', "f": 'f', "d": 'd', "t": 't',
		"n": 'n', "l": 'l', "g": 'g', "k": 'k', "h": 'h',
		"j": 'j', "q": 'q', "x": 'x', "r": 'r', "z": 'z', "c": 'c',
		"s": 's', "y": 'y', "w": 'w',
	},
	finals: map[string]byte{
		"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
		"ai": 'i', "ei": 'w', "ao": 'c', "ou": 'q',
		"an": 'j', "en": 'n', "ang": 'h', "eng": 'g',
		"in": 'n', "ing": 'k', "ong": 's', "iong": 's',
		"ia": 'x', "ua": 'x', "ie": 'x', "ve": 'y', "uo": 'o',
		"iao": 'l', "uai": 'y', "ian": 'm', "uan": 'r', "van": 'r',
		"iang": 'l', "uang": 'l', "iu": 'q', "ui": 'v', "un": 'p', "vn": 'p',
		"er": 'r',
	},
	zeroCons: map[string]string{
		"a": "aa", "ai": "ai", "an": "an", "ang": "ah",
		"ao": "ao", "e": "ee", "ei": "ei", "en": "en",
		"eng": "eg", "er": "er", "o": "oo", "ou": "ou",
	},
}

// ShuangpinJiajia is the Jiajia ("加加") layout.
var shuangpinJiajia = shuangpinTable{
	name: "jiajia",
	initials: map[string]byte{
		"zh": 'e', "ch": 'f', "sh": 'r',
		"b": 'b', "p": 'p', "m": 'm', "f": 'f', "d": 'd', "t": 't',
		"n": 'n', "l": 'l', "g": 'g', "k": 'k', "h": 'h',
		"j": 'j', "q": 'q', "x": 'x', "r": 'r', "z": 'z', "c": 'c',
		"s": 's', "y": 'y', "w": 'w',
	},
	finals: map[string]byte{
		"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
		"ai": 'l', "ei": 'z', "ao": 'k', "ou": 'b',
		"an": 'j', "en": 'f', "ang": 'h', "eng": 'g',
		"in": 'n', "ing": 'y', "ong": 's', "iong": 's',
		"ia": 'w', "ua": 'w', "ie": 'x', "ve": 't', "uo": 'o',
		"iao": 'c', "uai": 'y', "ian": 'm', "uan": 'q', "van": 'q',
		"iang": 'd', "uang": 'd', "iu": 'q', "ui": 'v', "un": 'p', "vn": 'p',
		"er": 'r',
	},
	zeroCons: map[string]string{
		"a": "aa", "ai": "ai", "an": "an", "ang": "ah",
		"ao": "ao", "e": "ee", "ei": "ei", "en": "en",
		"eng": "eg", "er": "er", "o": "oo", "ou": "ou",
	},
}

// ShuangpinMicrosoft is Microsoft Pinyin IME's double-pinyin layout.
var shuangpinMicrosoft = shuangpinTable{
	name: "microsoft",
	initials: map[string]byte{
		"zh": 'v', "ch": 'i', "sh": 'u',
		"b": 'b', "p": 'p', "m": 'm', "f": 'f', "d": 'd', "t": 't',
		"n": 'n', "l": 'l', "g": 'g', "k": 'k', "h": 'h',
		"j": 'j', "q": 'q', "x": 'x', "r": 'r', "z": 'z', "c": 'c',
		"s": 's', "y": 'y', "w": 'w',
	},
	finals: map[string]byte{
		"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
		"ai": 'l', "ei": 'z', "ao": 'c', "ou": 'q',
		"an": 'j', "en": 'n', "ang": 'h', "eng": 'g',
		"in": 'n', "ing": 'k', "ong": 's', "iong": 's',
		"ia": 'w', "ua": 'w', "ie": 'x', "ve": 'v', "uo": 'o',
		"iao": 'n', "uai": 'y', "ian": 'm', "uan": 'r', "van": 'r',
		"iang": 'd', "uang": 'd', "iu": 'q', "ui": 'v', "un": 'p', "vn": 'p',
		"er": 'r',
	},
	zeroCons: map[string]string{
		"a": "aa", "ai": "ai", "an": "an", "ang": "ah",
		"ao": "ao", "e": "ee", "ei": "ei", "en": "en",
		"eng": "eg", "er": "er", "o": "oo", "ou": "ou",
	},
}

// ShuangpinThunisoft is the Ziguang/Thunisoft ("紫光拼音") layout.
var shuangpinThunisoft = shuangpinTable{
	name: "thunisoft",
	initials: map[string]byte{
		"zh": 'u', "ch": 'i', "sh": 'v',
		"b": 'b', "p": 'p', "m": 'm', "f": 'f', "d": 'd', "t": 't',
		"n": 'n', "l": 'l', "g": 'g', "k": 'k', "h": 'h',
		"j": 'j', "q": 'q', "x": 'x', "r": 'r', "z": 'z', "c": 'c',
		"s": 's', "y": 'y', "w": 'w',
	},
	finals: map[string]byte{
		"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
		"ai": 'i', "ei": 'e', "ao": 'a', "ou": 'o',
		"an": 'j', "en": 'n', "ang": 'h', "eng": 'g',
		"in": 'n', "ing": 'k', "ong": 's', "iong": 's',
		"ia": 'w', "ua": 'w', "ie": 'x', "ve": 't', "uo": 'o',
		"iao": 'c', "uai": 'y', "ian": 'm', "uan": 'r', "van": 'r',
		"iang": 'd', "uang": 'd', "iu": 'q', "ui": 'v', "un": 'p', "vn": 'p',
		"er": 'r',
	},
	zeroCons: map[string]string{
		"a": "aa", "ai": "ai", "an": "an", "ang": "ah",
		"ao": "ao", "e": "ee", "ei": "ei", "en": "en",
		"eng": "eg", "er": "er", "o": "oo", "ou": "ou",
	},
}

// ShuangpinZRM is the ZRM ("自然码") layout.
var shuangpinZRM = shuangpinTable{
	name: "zrm",
	initials: map[string]byte{
		"zh": 'v', "ch": 'i', "sh": 'u',
		"b": 'b', "p": 'p', "m": 'm', "f": 'f', "d": 'd', "t": 't',
		"n": 'n', "l": 'l', "g": 'g', "k": 'k', "h": 'h',
		"j": 'j', "q": 'q', "x": 'x', "r": 'r', "z": 'z', "c": 'c',
		"s": 's', "y": 'y', "w": 'w',
	},
	finals: map[string]byte{
		"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
		"ai": 'l', "ei": 'z', "ao": 'k', "ou": 'b',
		"an": 'j', "en": 'f', "ang": 'h', "eng": 'g',
		"in": 'n', "ing": 'y', "ong": 's', "iong": 's',
		"ia": 'w', "ua": 'w', "ie": 'x', "ve": 'v', "uo": 'o',
		"iao": 'c', "uai": 'y', "ian": 'm', "uan": 'r', "van": 'r',
		"iang": 'd', "uang": 'd', "iu": 'q', "ui": 'v', "un": 'p', "vn": 'p',
		"er": 'r',
	},
	zeroCons: map[string]string{
		"a": "aa", "ai": "ai", "an": "an", "ang": "ah",
		"ao": "ao", "e": "ee", "ei": "ei", "en": "en",
		"eng": "eg", "er": "er", "o": "oo", "ou": "ou",
	},
}
