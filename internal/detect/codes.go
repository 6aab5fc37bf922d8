package detect

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// m2mCodes maps ISO 639-3 labels to the language codes of the M2M100
// tokenizer. Macrolanguages and their common individual codes both map.
var m2mCodes = map[string]string{
	"afr": "af", "amh": "am", "ara": "ar", "arb": "ar", "ast": "ast",
	"aze": "az", "azj": "az", "bak": "ba", "bel": "be", "bul": "bg",
	"ben": "bn", "bre": "br", "bos": "bs", "cat": "ca", "ceb": "ceb",
	"ces": "cs", "cym": "cy", "dan": "da", "deu": "de", "ell": "el",
	"eng": "en", "spa": "es", "est": "et", "ekk": "et", "fas": "fa",
	"pes": "fa", "ful": "ff", "fin": "fi", "fra": "fr", "fry": "fy",
	"gle": "ga", "gla": "gd", "glg": "gl", "guj": "gu", "hau": "ha",
	"heb": "he", "hin": "hi", "hrv": "hr", "hat": "ht", "hun": "hu",
	"hye": "hy", "ind": "id", "ibo": "ig", "ilo": "ilo", "isl": "is",
	"ita": "it", "jpn": "ja", "jav": "jv", "kat": "ka", "kaz": "kk",
	"khm": "km", "kan": "kn", "kor": "ko", "ltz": "lb", "lug": "lg",
	"lin": "ln", "lao": "lo", "lit": "lt", "lav": "lv", "lvs": "lv",
	"mlg": "mg", "plt": "mg", "mkd": "mk", "mal": "ml", "mon": "mn",
	"khk": "mn", "mar": "mr", "msa": "ms", "zsm": "ms", "mya": "my",
	"nep": "ne", "npi": "ne", "nld": "nl", "nor": "no", "nob": "no",
	"nno": "no", "nso": "ns", "oci": "oc", "ori": "or", "ory": "or",
	"pan": "pa", "pol": "pl", "pus": "ps", "pbt": "ps", "por": "pt",
	"ron": "ro", "rus": "ru", "snd": "sd", "sin": "si", "slk": "sk",
	"slv": "sl", "som": "so", "sqi": "sq", "als": "sq", "srp": "sr",
	"ssw": "ss", "sun": "su", "swe": "sv", "swa": "sw", "swh": "sw",
	"tam": "ta", "tha": "th", "tgl": "tl", "tsn": "tn", "tur": "tr",
	"ukr": "uk", "urd": "ur", "uzb": "uz", "uzn": "uz", "vie": "vi",
	"wol": "wo", "xho": "xh", "yid": "yi", "ydd": "yi", "yor": "yo",
	"zho": "zh", "cmn": "zh", "yue": "zh", "zul": "zu",
}

// CodeForLabel maps a classifier label to a short language code.
// It accepts bare ISO 639-3 codes ("fra") and fastText labels
// ("__label__fra_Latn"). The boolean is false for unmapped labels.
func CodeForLabel(label string) (string, bool) {
	label = strings.TrimPrefix(strings.TrimSpace(label), "__label__")
	if idx := strings.IndexByte(label, '_'); idx >= 0 {
		label = label[:idx]
	}
	code, ok := m2mCodes[strings.ToLower(label)]
	return code, ok
}

// ParseCode canonicalizes a BCP 47 tag ("fr-CA", "EN") to its base
// ISO 639-1 code ("fr", "en").
func ParseCode(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", tag, err)
	}
	base, _ := t.Base()
	return base.String(), nil
}
