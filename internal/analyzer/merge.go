package analyzer

// Phrase is a verb together with the auxiliaries that inflect it.
type Phrase struct {
	Token
	Auxiliaries []string `json:"auxiliaries,omitempty"`
	Label       string   `json:"conjugation_label,omitempty"`
}

// MergeInflections joins each verb with the auxiliary verbs and dependent
// or suffix verbs that follow it. Other tokens pass through unchanged.
// The merged reading is kept only when every part has one.
func MergeInflections(tokens []Token) []Phrase {
	out := make([]Phrase, 0, len(tokens))
	for i := 0; i < len(tokens); {
		tk := tokens[i]
		if tk.POS != posVerb {
			out = append(out, Phrase{Token: tk})
			i++
			continue
		}

		j := i + 1
		for j < len(tokens) && isInflection(tokens[j]) {
			j++
		}
		if j == i+1 {
			out = append(out, Phrase{Token: tk})
			i++
			continue
		}

		merged := tk
		auxs := make([]string, 0, j-i-1)
		withReading := tk.HasReading()
		for _, aux := range tokens[i+1 : j] {
			merged.Surface += aux.Surface
			merged.Reading += aux.Reading
			merged.Pronunciation += aux.Pronunciation
			withReading = withReading && aux.HasReading()
			auxs = append(auxs, aux.Lemma)
		}
		if !withReading {
			merged.Reading, merged.Pronunciation = "", ""
		}
		merged.End = tokens[j-1].End
		out = append(out, Phrase{Token: merged, Auxiliaries: auxs, Label: conjugationLabel(auxs)})
		i = j
	}
	return out
}

const (
	posVerb      = "動詞"
	posAuxiliary = "助動詞"
)

func isInflection(t Token) bool {
	if t.POS == posAuxiliary {
		return true
	}
	return t.POS == posVerb && (t.POS1 == "非自立" || t.POS1 == "接尾")
}

func conjugationLabel(auxs []string) string {
	switch {
	case len(auxs) == 1 && auxs[0] == "ます":
		return "polite"
	case len(auxs) == 1 && auxs[0] == "た":
		return "past"
	case len(auxs) == 2 && auxs[0] == "ます" && auxs[1] == "た":
		return "polite past"
	case len(auxs) == 1 && auxs[0] == "ない":
		return "negative"
	}
	return ""
}
