// Package overlay holds the fixed translation entries merged into locale
// files. Every table is ordered; the order is the key order written to JSON.
package overlay

// Top-level and nested keys targeted by the overlay.
const (
	KeyCountryList    = "countryList"
	KeyEnums          = "enums"
	KeyProfile        = "profile"
	KeyPassport       = "passport"
	KeyFields         = "fields"
	KeyNIPCode        = "nipCode"
	KeyProfileDetails = "profileDetails"
)

// Label is a string with a French and an English variant.
type Label struct {
	FR string
	EN string
}

// Same returns a label spelled identically in both languages.
func Same(s string) Label {
	return Label{FR: s, EN: s}
}

// Pick returns the French variant when french is set, the English one otherwise.
func (l Label) Pick(french bool) string {
	if french {
		return l.FR
	}
	return l.EN
}

// Entry is one key of a table.
type Entry struct {
	Key   string
	Label Label
}

// Table is an ordered key to label mapping.
type Table []Entry

// Group is a named table nested under enums.
type Group struct {
	Name    string
	Entries Table
}

var (
	// NIPCode labels profile.fields.nipCode.
	NIPCode = Same("NIP")
	// ProfileDetails labels profile.profileDetails.
	ProfileDetails = Label{FR: "Détails du profil", EN: "Profile details"}
)

// Countries returns the countryList entries keyed by ISO-3166 alpha-2 code.
func Countries() Table {
	return Table{
		{Key: "GA", Label: Same("Gabon")},
		{Key: "FR", Label: Same("France")},
		{Key: "CM", Label: Label{FR: "Cameroun", EN: "Cameroon"}},
		{Key: "CG", Label: Same("Congo")},
		{Key: "CD", Label: Label{FR: "RD Congo", EN: "DR Congo"}},
		{Key: "SN", Label: Label{FR: "Sénégal", EN: "Senegal"}},
		{Key: "CI", Label: Label{FR: "Côte d'Ivoire", EN: "Ivory Coast"}},
		{Key: "MA", Label: Label{FR: "Maroc", EN: "Morocco"}},
		{Key: "TN", Label: Label{FR: "Tunisie", EN: "Tunisia"}},
		{Key: "DZ", Label: Label{FR: "Algérie", EN: "Algeria"}},
		{Key: "BE", Label: Label{FR: "Belgique", EN: "Belgium"}},
		{Key: "CH", Label: Label{FR: "Suisse", EN: "Switzerland"}},
		{Key: "CA", Label: Same("Canada")},
		{Key: "US", Label: Label{FR: "États-Unis", EN: "United States"}},
	}
}

// Enums returns the enum label groups.
// civil_union and pacs share a label; both values occur in stored profiles.
func Enums() []Group {
	civilUnion := Label{FR: "Pacsé(e)", EN: "Civil Union"}
	return []Group{
		{Name: "gender", Entries: Table{
			{Key: "male", Label: Label{FR: "Masculin", EN: "Male"}},
			{Key: "female", Label: Label{FR: "Féminin", EN: "Female"}},
		}},
		{Name: "maritalStatus", Entries: Table{
			{Key: "single", Label: Label{FR: "Célibataire", EN: "Single"}},
			{Key: "married", Label: Label{FR: "Marié(e)", EN: "Married"}},
			{Key: "divorced", Label: Label{FR: "Divorcé(e)", EN: "Divorced"}},
			{Key: "widowed", Label: Label{FR: "Veuf/Veuve", EN: "Widowed"}},
			{Key: "civil_union", Label: civilUnion},
			{Key: "pacs", Label: civilUnion},
			{Key: "cohabiting", Label: Label{FR: "Concubinage", EN: "Cohabiting"}},
		}},
		{Name: "workStatus", Entries: Table{
			{Key: "employee", Label: Label{FR: "Salarié(e)", EN: "Employee"}},
			{Key: "self_employed", Label: Label{FR: "Indépendant(e)", EN: "Self-employed"}},
			{Key: "entrepreneur", Label: Label{FR: "Entrepreneur", EN: "Entrepreneur"}},
			{Key: "unemployed", Label: Label{FR: "Sans emploi", EN: "Unemployed"}},
			{Key: "retired", Label: Label{FR: "Retraité(e)", EN: "Retired"}},
			{Key: "student", Label: Label{FR: "Étudiant(e)", EN: "Student"}},
			{Key: "other", Label: Label{FR: "Autre", EN: "Other"}},
		}},
		{Name: "nationalityAcquisition", Entries: Table{
			{Key: "birth", Label: Label{FR: "Naissance", EN: "Birth"}},
			{Key: "naturalization", Label: Label{FR: "Naturalisation", EN: "Naturalization"}},
			{Key: "marriage", Label: Label{FR: "Mariage", EN: "Marriage"}},
			{Key: "adoption", Label: Same("Adoption")},
			{Key: "other", Label: Label{FR: "Autre", EN: "Other"}},
		}},
	}
}

// Passport returns the profile.passport field labels.
func Passport() Table {
	return Table{
		{Key: "issuingAuthority", Label: Label{FR: "Autorité de délivrance", EN: "Authority"}},
		{Key: "number", Label: Label{FR: "Numéro", EN: "Number"}},
		{Key: "issueDate", Label: Label{FR: "Délivré le", EN: "Issue date"}},
		{Key: "expiryDate", Label: Label{FR: "Expire le", EN: "Expiry date"}},
	}
}
