package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

// nameEntry is one Roman spelling of a canonical Devanagari name.
// Several spellings may map to the same name.
type nameEntry struct {
	key      string
	value    string
	category int
}

// The dictionary is applied in slice order: for a duplicate Roman key
// the last entry wins. Keep first names before surnames before places.
var nameEntries = []nameEntry{
	// Common first names
	{"ram", "राम", CATEGORY_FIRST_NAME},
	{"rama", "राम", CATEGORY_FIRST_NAME},
	{"shyam", "श्याम", CATEGORY_FIRST_NAME},
	{"hari", "हरि", CATEGORY_FIRST_NAME},
	{"krishna", "कृष्ण", CATEGORY_FIRST_NAME},
	{"sita", "सीता", CATEGORY_FIRST_NAME},
	{"gita", "गीता", CATEGORY_FIRST_NAME},
	{"devi", "देवी", CATEGORY_FIRST_NAME},
	{"kumar", "कुमार", CATEGORY_FIRST_NAME},
	{"prasad", "प्रसाद", CATEGORY_FIRST_NAME},
	{"bahadur", "बहादुर", CATEGORY_FIRST_NAME},
	{"kumari", "कुमारी", CATEGORY_FIRST_NAME},
	{"maya", "माया", CATEGORY_FIRST_NAME},
	{"laxmi", "लक्ष्मी", CATEGORY_FIRST_NAME},
	{"lakshmi", "लक्ष्मी", CATEGORY_FIRST_NAME},
	{"saraswati", "सरस्वती", CATEGORY_FIRST_NAME},
	{"parvati", "पार्वती", CATEGORY_FIRST_NAME},
	{"bishnu", "विष्णु", CATEGORY_FIRST_NAME},
	{"ganesh", "गणेश", CATEGORY_FIRST_NAME},
	{"ramesh", "रमेश", CATEGORY_FIRST_NAME},
	{"suresh", "सुरेश", CATEGORY_FIRST_NAME},
	{"mahesh", "महेश", CATEGORY_FIRST_NAME},
	{"dinesh", "दिनेश", CATEGORY_FIRST_NAME},
	{"rajesh", "राजेश", CATEGORY_FIRST_NAME},
	{"santosh", "सन्तोष", CATEGORY_FIRST_NAME},
	{"binod", "विनोद", CATEGORY_FIRST_NAME},
	{"dipak", "दीपक", CATEGORY_FIRST_NAME},
	{"sunita", "सुनिता", CATEGORY_FIRST_NAME},
	{"anita", "अनिता", CATEGORY_FIRST_NAME},
	{"sarita", "सरिता", CATEGORY_FIRST_NAME},
	{"kamala", "कमला", CATEGORY_FIRST_NAME},
	{"radha", "राधा", CATEGORY_FIRST_NAME},

	// Surnames by ethnic/regional grouping
	{"shrestha", "श्रेष्ठ", CATEGORY_SURNAME},
	{"shakya", "शाक्य", CATEGORY_SURNAME},
	{"maharjan", "महर्जन", CATEGORY_SURNAME},
	{"tamang", "तामाङ", CATEGORY_SURNAME},
	{"gurung", "गुरुङ", CATEGORY_SURNAME},
	{"magar", "मगर", CATEGORY_SURNAME},
	{"rai", "राई", CATEGORY_SURNAME},
	{"limbu", "लिम्बू", CATEGORY_SURNAME},
	{"sherpa", "शेर्पा", CATEGORY_SURNAME},
	{"lama", "लामा", CATEGORY_SURNAME},
	{"thapa", "थापा", CATEGORY_SURNAME},
	{"adhikari", "अधिकारी", CATEGORY_SURNAME},
	{"khatri", "खत्री", CATEGORY_SURNAME},
	{"karki", "कार्की", CATEGORY_SURNAME},
	{"subedi", "सुवेदी", CATEGORY_SURNAME},
	{"gautam", "गौतम", CATEGORY_SURNAME},
	{"sharma", "शर्मा", CATEGORY_SURNAME},
	{"aryal", "अर्याल", CATEGORY_SURNAME},
	{"pandey", "पाण्डेय", CATEGORY_SURNAME},
	{"poudel", "पौडेल", CATEGORY_SURNAME},
	{"pokharel", "पोखरेल", CATEGORY_SURNAME},
	{"regmi", "रेग्मी", CATEGORY_SURNAME},
	{"rijal", "रिजाल", CATEGORY_SURNAME},
	{"sapkota", "सापकोटा", CATEGORY_SURNAME},
	{"bhandari", "भण्डारी", CATEGORY_SURNAME},
	{"bhattarai", "भट्टराई", CATEGORY_SURNAME},
	{"khadka", "खड्का", CATEGORY_SURNAME},
	{"dahal", "दाहाल", CATEGORY_SURNAME},
	{"koirala", "कोइराला", CATEGORY_SURNAME},
	{"acharya", "आचार्य", CATEGORY_SURNAME},
	{"basnet", "बस्नेत", CATEGORY_SURNAME},
	{"ghimire", "घिमिरे", CATEGORY_SURNAME},
	{"joshi", "जोशी", CATEGORY_SURNAME},
	{"oli", "ओली", CATEGORY_SURNAME},
	{"rana", "राणा", CATEGORY_SURNAME},
	{"shah", "शाह", CATEGORY_SURNAME},
	{"chhetri", "क्षेत्री", CATEGORY_SURNAME},
	{"yadav", "यादव", CATEGORY_SURNAME},
	{"mandal", "मण्डल", CATEGORY_SURNAME},
	{"chaudhary", "चौधरी", CATEGORY_SURNAME},

	// Places
	{"nepal", "नेपाल", CATEGORY_PLACE},
	{"kathmandu", "काठमाडौं", CATEGORY_PLACE},
	{"pokhara", "पोखरा", CATEGORY_PLACE},
	{"lalitpur", "ललितपुर", CATEGORY_PLACE},
	{"bhaktapur", "भक्तपुर", CATEGORY_PLACE},
	{"biratnagar", "विराटनगर", CATEGORY_PLACE},
}

// buildNameDict flattens ordered entries into a lookup map.
// Last definition wins for duplicate keys.
func buildNameDict(entries []nameEntry) map[string]string {
	dict := make(map[string]string, len(entries))
	for _, entry := range entries {
		dict[entry.key] = entry.value
	}
	return dict
}
