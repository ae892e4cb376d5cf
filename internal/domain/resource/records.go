package resource

import "github.com/folio-hq/folio/internal/shared/constants"

// About is the singleton profile block of a site.
type About struct {
	Base
	Name           string `json:"name" binding:"required"`
	Age            string `json:"age" binding:"required"`
	Occupation     string `json:"occupation" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description1   string `json:"description1" binding:"required" gorm:"type:text"`
	Description2   string `json:"description2" binding:"required" gorm:"type:text"`
	Signature      string `json:"signature" binding:"required" sanitize:"-"`
	SignatureName  string `json:"signatureName" binding:"required"`
	SignatureTitle string `json:"signatureTitle" binding:"required"`
	Image          string `json:"image" binding:"required" sanitize:"-"`
}

func (About) TableName() string { return constants.TableAbouts }

type Skill struct {
	Base
	Name       string `json:"name" binding:"required"`
	Percentage int    `json:"percentage" binding:"gte=0,lte=100"`
}

func (Skill) TableName() string { return constants.TableSkills }

type Experience struct {
	Base
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Years       string `json:"years" binding:"required"`
	Description string `json:"description" binding:"required" gorm:"type:text"`
}

func (Experience) TableName() string { return constants.TableExperiences }

type Education struct {
	Base
	Title       string `json:"title" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Years       string `json:"years" binding:"required"`
	Description string `json:"description" binding:"required" gorm:"type:text"`
}

func (Education) TableName() string { return constants.TableEducations }

// Portfolio is a showcased project. Inactive items are hidden from the
// public site; featured items are listed first there.
type Portfolio struct {
	Base
	Category    string   `json:"category" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Image       string   `json:"image" binding:"required" sanitize:"-"`
	LargeImage  string   `json:"largeImage" binding:"required" sanitize:"-"`
	Description string   `json:"description" binding:"required" gorm:"type:text"`
	Client      string   `json:"client" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Task        string   `json:"task" binding:"required"`
	Budget      string   `json:"budget" binding:"required"`
	Tags        []string `json:"tags" gorm:"serializer:json"`
	Link        string   `json:"link" sanitize:"-"`
	IsActive    *bool    `json:"isActive" gorm:"not null;default:true"`
	Featured    bool     `json:"featured" gorm:"not null;default:false"`
}

func (Portfolio) TableName() string { return constants.TablePortfolios }

// Visible reports whether the item is shown on the public site.
func (p *Portfolio) Visible() bool {
	return p.IsActive == nil || *p.IsActive
}

type Testimonial struct {
	Base
	Text        string `json:"text" binding:"required" gorm:"type:text"`
	AuthorName  string `json:"authorName" binding:"required"`
	AuthorTitle string `json:"authorTitle" binding:"required"`
	AuthorImage string `json:"authorImage" binding:"required" sanitize:"-"`
	Alt         string `json:"alt" binding:"required"`
}

func (Testimonial) TableName() string { return constants.TableTestimonials }

type Service struct {
	Base
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required" gorm:"type:text"`
	Icon        string `json:"icon" binding:"required"`
	AOSDuration int    `json:"aosDuration" gorm:"column:aos_duration;not null;default:1000"`
	AOSDelay    int    `json:"aosDelay" gorm:"column:aos_delay;not null;default:0"`
}

func (Service) TableName() string { return constants.TableServices }

type FunFact struct {
	Base
	Value  float64 `json:"value" binding:"required"`
	Suffix string  `json:"suffix"`
	Label  string  `json:"label" binding:"required"`
}

func (FunFact) TableName() string { return constants.TableFunFacts }

type Brand struct {
	Base
	Image string `json:"image" binding:"required" sanitize:"-"`
	Alt   string `json:"alt" binding:"required"`
}

func (Brand) TableName() string { return constants.TableBrands }

// PricingFeature is one line of a pricing card.
type PricingFeature struct {
	Label    string `json:"label" binding:"required"`
	Included bool   `json:"included"`
}

type Pricing struct {
	Base
	Title       string           `json:"title" binding:"required"`
	Price       string           `json:"price" binding:"required"`
	Per         string           `json:"per" binding:"required"`
	Description string           `json:"description" binding:"required" gorm:"type:text"`
	Features    []PricingFeature `json:"features" binding:"dive" gorm:"serializer:json"`
	AOSDuration int              `json:"aosDuration" gorm:"column:aos_duration;not null;default:1200"`
}

func (Pricing) TableName() string { return constants.TablePricings }

type Award struct {
	Base
	Logo         string `json:"logo" binding:"required" sanitize:"-"`
	Title        string `json:"title" binding:"required"`
	Year         string `json:"year" binding:"required"`
	Organization string `json:"organization" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description" binding:"required" gorm:"type:text"`
}

func (Award) TableName() string { return constants.TableAwards }

type IntroFeature struct {
	Base
	Icon       string `json:"icon" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Text       string `json:"text" binding:"required" gorm:"type:text"`
	ExtraClass string `json:"extraClass"`
}

func (IntroFeature) TableName() string { return constants.TableIntroFeatures }

// Defaulter fills values a new record gets when the body omits them.
type Defaulter interface {
	ApplyDefaults()
}

func (p *Portfolio) ApplyDefaults() {
	if p.Link == "" {
		p.Link = "#"
	}
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func (s *Service) ApplyDefaults() {
	if s.AOSDuration == 0 {
		s.AOSDuration = 1000
	}
}

func (p *Pricing) ApplyDefaults() {
	if p.AOSDuration == 0 {
		p.AOSDuration = 1200
	}
	if p.Features == nil {
		p.Features = []PricingFeature{}
	}
}
