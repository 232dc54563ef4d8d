package model

// LocalizedText carries the English and Bosnian renderings of a user-facing
// string. Both portals render whichever language the visitor picked.
type LocalizedText struct {
	EN string `json:"en"`
	BS string `json:"bs"`
}

func (t LocalizedText) Get(lang string) string {
	if lang == "bs" && t.BS != "" {
		return t.BS
	}
	return t.EN
}

func (t LocalizedText) IsZero() bool {
	return t.EN == "" && t.BS == ""
}
