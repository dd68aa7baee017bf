package db

import (
	"log"

	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func category(keyword, name, icon, description string, weight int, examples ...string) models.CategoryFields {
	return models.CategoryFields{
		Keyword:     keyword,
		Name:        name,
		Icon:        icon,
		Description: description,
		Weight:      weight,
		Examples:    datatypes.NewJSONSlice(examples),
	}
}

var seedDistricts = []models.District{
	{Name: "Kampala", Region: "Central", Status: true},
	{Name: "Gulu", Region: "Northern", Status: true},
	{Name: "Mbarara", Region: "Western", Status: true},
	{Name: "Mbale", Region: "Eastern", Status: true},
	{Name: "Jinja", Region: "Eastern", Status: true},
}

var seedInstitutions = []string{"Makerere University", "Mulago Hospital", "Bank of Uganda", "Uganda Revenue Authority", "KCCA"}

var seedPositions = []string{"Cabinet Secretary", "Minister", "Mayor", "County Governor", "Managing Director"}

var seedNominees = []struct {
	name                            string
	position, institution, district int
	status                          bool
}{
	{"John Doe", 1, 0, 0, true},
	{"Jane Smith", 0, 2, 1, false},
	{"Paul Johnson", 2, 4, 0, true},
	{"Emily Davis", 4, 3, 2, false},
	{"Michael Brown", 3, 1, 4, true},
}

var seedInstitutionCategories = []models.CategoryFields{
	category("prevalence-of-bribery", "Prevalence of Bribery", "💰", "Systematic occurrence of bribery", 5,
		"Widespread bribe collection", "Systematic corruption", "Regular illegal payments"),
	category("extent-of-embezzlement", "Extent of Embezzlement", "🏦", "Scale of funds misappropriation", 5,
		"Systemic fund diversion", "Resource misappropriation", "Financial misconduct"),
	category("incidence-of-nepotism", "Incidence of Nepotism", "👥", "Systematic favoritism of relatives", 4,
		"Family-based hiring", "Relative favoritism", "Nepotistic practices"),
	category("frequency-of-fraud", "Frequency of Fraud", "🎭", "Occurrence of fraudulent activities", 5,
		"Document falsification", "False claims", "Procurement manipulation"),
	category("level-of-conflict", "Level of Conflict of Interest", "⚖️", "Extent of conflicts of interest", 4,
		"Business conflicts", "Personal interests", "Decision bias"),
	category("transparency-level", "Transparency of Operations", "👁️", "Level of operational transparency", 4,
		"Information access", "Process clarity", "Decision transparency"),
	category("abuse-of-authority", "Abuse of Authority", "👊", "Institutional misuse of power", 5,
		"Power misuse", "Authority abuse", "Resource misappropriation"),
	category("degree-of-cronyism", "Degree of Cronyism", "🤝", "Extent of favoritism practices", 4,
		"Friend favoritism", "Biased appointments", "Unfair advantages"),
	category("unexplained-wealth-officials", "Unexplained Wealth among Officials", "💎", "Officials' unexplained wealth", 4,
		"Suspicious assets", "Unexplained riches", "Wealth discrepancies"),
	category("corruption-responsiveness", "Responsiveness to Corruption", "⚡", "Response to corruption reports", 3,
		"Report handling", "Investigation speed", "Action effectiveness"),
}

var seedNomineeCategories = []models.CategoryFields{
	category("bribery", "Bribery", "💰", "Taking or soliciting bribes for services or favors", 5,
		"Demanding payment for government services", "Accepting kickbacks from contractors", "Bribes for tender awards"),
	category("embezzlement", "Embezzlement", "🏦", "Theft or misappropriation of public funds", 4,
		"Missing public funds", "Unauthorized use of resources", "Fraudulent claims"),
	category("nepotism", "Nepotism", "👥", "Favoring relatives in appointments and contracts", 3,
		"Hiring family members", "Awarding contracts to relatives", "Creating positions for friends"),
	category("fraud", "Fraud", "📄", "Deceptive practices for personal gain", 13,
		"Procurement fraud", "False documentation", "Inflated contracts"),
	category("conflict", "Conflict of Interest", "⚖️", "Using public office for private benefit", 8,
		"Hidden business interests", "Personal benefit from decisions", "Unfair advantages"),
	category("transparency", "Lack of Transparency", "🔍", "Concealing information from the public", 7,
		"Hidden records", "Secret decisions", "Blocked information access"),
	category("abuse", "Abuse of Power", "👊", "Misusing official position and authority", 12,
		"Intimidation", "Misuse of resources", "Abuse of authority"),
	category("cronyism", "Cronyism", "🤝", "Favoring friends and associates", 8,
		"Political appointments", "Biased contract awards", "Favorable treatment"),
	category("wealth", "Unexplained Wealth", "💎", "Assets and lifestyle beyond known income", 10,
		"Luxury properties", "Unexplained assets", "Hidden wealth"),
	category("neglect", "Neglect of Duty", "⚡", "Failing to perform official responsibilities", 5,
		"Absenteeism", "Project delays", "Service delivery failure"),
}

// SeedResult reports what Seed inserted.
type SeedResult struct {
	Skipped               bool
	Districts             int
	Institutions          int
	Positions             int
	Nominees              int
	NomineeCategories     int
	InstitutionCategories int
}

// Seed fills an empty database with reference data. It does nothing when any
// district or institution already exists.
func Seed(db *gorm.DB) (*SeedResult, error) {
	result := &SeedResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		var districtCount, institutionCount int64
		if err := tx.Model(&models.District{}).Count(&districtCount).Error; err != nil {
			return errors.Wrap(err, "count districts")
		}
		if err := tx.Model(&models.Institution{}).Count(&institutionCount).Error; err != nil {
			return errors.Wrap(err, "count institutions")
		}
		if districtCount > 0 || institutionCount > 0 {
			log.Println("Database is not empty. Skipping seeding.")
			result.Skipped = true
			return nil
		}

		districts := append([]models.District(nil), seedDistricts...)
		if err := tx.Create(&districts).Error; err != nil {
			return errors.Wrap(err, "seed districts")
		}
		institutions := make([]models.Institution, 0, len(seedInstitutions))
		for _, name := range seedInstitutions {
			institutions = append(institutions, models.Institution{Name: name, Status: true})
		}
		if err := tx.Create(&institutions).Error; err != nil {
			return errors.Wrap(err, "seed institutions")
		}
		positions := make([]models.Position, 0, len(seedPositions))
		for _, name := range seedPositions {
			positions = append(positions, models.Position{Name: name, Status: true})
		}
		if err := tx.Create(&positions).Error; err != nil {
			return errors.Wrap(err, "seed positions")
		}

		nominees := make([]models.Nominee, 0, len(seedNominees))
		for _, n := range seedNominees {
			nominees = append(nominees, models.Nominee{
				Name:          n.name,
				Status:        n.status,
				PositionID:    positions[n.position].ID,
				InstitutionID: institutions[n.institution].ID,
				DistrictID:    districts[n.district].ID,
			})
		}
		if err := tx.Create(&nominees).Error; err != nil {
			return errors.Wrap(err, "seed nominees")
		}

		nomineeCategories := make([]models.RatingCategory, 0, len(seedNomineeCategories))
		for _, c := range seedNomineeCategories {
			nomineeCategories = append(nomineeCategories, models.RatingCategory{CategoryFields: c})
		}
		if err := tx.Create(&nomineeCategories).Error; err != nil {
			return errors.Wrap(err, "seed rating categories")
		}
		institutionCategories := make([]models.InstitutionRatingCategory, 0, len(seedInstitutionCategories))
		for _, c := range seedInstitutionCategories {
			institutionCategories = append(institutionCategories, models.InstitutionRatingCategory{CategoryFields: c})
		}
		if err := tx.Create(&institutionCategories).Error; err != nil {
			return errors.Wrap(err, "seed institution rating categories")
		}

		*result = SeedResult{
			Districts:             len(districts),
			Institutions:          len(institutions),
			Positions:             len(positions),
			Nominees:              len(nominees),
			NomineeCategories:     len(nomineeCategories),
			InstitutionCategories: len(institutionCategories),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
