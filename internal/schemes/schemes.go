// Package schemes is the fixed catalog of highlighted Maharashtra schemes.
package schemes

type Category string

const (
	WomenChild     Category = "women_child"
	SeniorCitizens Category = "senior_citizens"
	Health         Category = "health"
	Housing        Category = "housing"
	Agriculture    Category = "agriculture"
)

type Scheme struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	NameMarathi string   `json:"name_marathi"`
	NameHindi   string   `json:"name_hindi"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Eligibility string   `json:"eligibility"`
	Benefits    string   `json:"benefits"`
}

var catalog = []Scheme{
	{
		ID:          1,
		Name:        "Majhi Kanya Bhagyashree Yojana",
		NameMarathi: "माझी कन्या भाग्यश्री योजना",
		NameHindi:   "माझी कन्या भाग्यश्री योजना",
		Category:    WomenChild,
		Description: "Financial assistance for families with girl children",
		Eligibility: "Annual income less than ₹1 lakh",
		Benefits:    "Up to ₹50,000 for two girl children",
	},
	{
		ID:          2,
		Name:        "Shravan Bal Yojana",
		NameMarathi: "श्रावण बाल योजना",
		NameHindi:   "श्रावण बाल योजना",
		Category:    SeniorCitizens,
		Description: "Monthly financial assistance for senior citizens",
		Eligibility: "Age 65+, below poverty line",
		Benefits:    "₹600 per month",
	},
	{
		ID:          3,
		Name:        "Lek Ladki Yojana",
		NameMarathi: "लेक लाडकी योजना",
		NameHindi:   "लेक लाडकी योजना",
		Category:    WomenChild,
		Description: "Financial support for girls from yellow and orange ration card families",
		Eligibility: "Yellow/Orange ration card holders",
		Benefits:    "Financial aid at different life stages up to ₹75,000",
	},
	{
		ID:          4,
		Name:        "Mahatma Jyotiba Phule Jan Arogya Yojana",
		NameMarathi: "महात्मा ज्योतिबा फुले जन आरोग्य योजना",
		NameHindi:   "महात्मा ज्योतिबा फुले जन आरोग्य योजना",
		Category:    Health,
		Description: "Health insurance scheme for families",
		Eligibility: "Yellow and orange ration card holders",
		Benefits:    "Free treatment up to ₹1.5 lakh per family per year",
	},
	{
		ID:          5,
		Name:        "Pradhan Mantri Awas Yojana",
		NameMarathi: "प्रधानमंत्री आवास योजना",
		NameHindi:   "प्रधानमंत्री आवास योजना",
		Category:    Housing,
		Description: "Affordable housing scheme",
		Eligibility: "Economically weaker sections without pucca house",
		Benefits:    "Subsidy for home construction/purchase",
	},
	{
		ID:          6,
		Name:        "Shetkari Sanman Nidhi Yojana",
		NameMarathi: "शेतकरी सन्मान निधी योजना",
		NameHindi:   "शेतकरी सन्मान निधी योजना",
		Category:    Agriculture,
		Description: "Financial assistance for farmers",
		Eligibility: "Registered farmers with land records",
		Benefits:    "₹6,000 per year in installments",
	},
}

// All returns a copy of the catalog in id order.
func All() []Scheme {
	return append([]Scheme(nil), catalog...)
}
