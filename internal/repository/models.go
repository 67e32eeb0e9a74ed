package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Party is a federal political party.
type Party struct {
	ID        int64
	Name      string
	ShortName *string
	Color     *string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// Riding is a federal electoral district. The geometry column is only
// touched by the point-lookup query and never scanned into Go.
type Riding struct {
	ID        int64
	Name      string
	Province  string
	FedNumber *int
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// Representative is a sitting or former member of the House of Commons,
// keyed publicly by their House of Commons person id.
type Representative struct {
	ID         int64
	HocID      int
	FirstName  *string
	LastName   *string
	Name       string
	Honorific  *string
	Email      *string
	Phone      *string
	PhotoURL   *string
	ProfileURL *string
	IsActive   bool
	PartyID    *int64
	RidingID   *int64
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

// RepresentativeRole is one caucus, committee, association or parliamentary
// position row scraped from a member profile.
type RepresentativeRole struct {
	ID               int64
	RepresentativeID int64
	RoleName         string
	RoleType         string
	Organization     *string
	Parliament       *int
	Session          *int
	StartDate        pgtype.Timestamptz
	EndDate          pgtype.Timestamptz
	IsCurrent        bool
	SourceURL        *string
	SourceHash       *string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

// PartyStanding is a seat-count snapshot for one party on one day.
type PartyStanding struct {
	ID         int64
	PartyID    *int64
	PartyName  string
	SeatCount  int
	AsOfDate   pgtype.Date
	Parliament *int
	Session    *int
	SourceURL  *string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

// Vote is a recorded division in the House.
type Vote struct {
	ID         int64
	VoteNumber int
	Parliament *int
	Session    *int
	VoteDate   pgtype.Date
	SubjectEn  *string
	SubjectFr  *string
	Decision   *string
	Yeas       *int
	Nays       *int
	Paired     *int
	BillNumber *string
	MotionText *string
	Sitting    *int
	SourceURL  *string
	SourceHash *string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

// VoteMember is a single member ballot within a vote.
type VoteMember struct {
	ID               int64
	VoteID           int64
	RepresentativeID *int64
	HocID            *int
	MemberName       string
	Position         string
	PartyName        *string
	RidingName       *string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

// Petition is an e-petition, keyed by its public petition number.
type Petition struct {
	ID               int64
	PetitionNumber   string
	TitleEn          *string
	TitleFr          *string
	Status           *string
	PresentationDate pgtype.Date
	ClosingDate      pgtype.Timestamptz
	Signatures       *int
	SponsorHocID     *int
	SponsorName      *string
	Parliament       *int
	Session          *int
	SourceURL        *string
	SourceHash       *string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

// Debate is one Hansard sitting in one floor language.
type Debate struct {
	ID          int64
	Parliament  *int
	Session     *int
	Sitting     *int
	DebateDate  pgtype.Date
	Language    *string
	Volume      *string
	Number      *string
	SpeakerName *string
	DocumentURL *string
	SourceHash  *string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// DebateIntervention is one spoken intervention within a debate, ordered by
// sequence.
type DebateIntervention struct {
	ID                 int64
	DebateID           int64
	Sequence           int
	SpeakerName        *string
	SpeakerAffiliation *string
	FloorLanguage      *string
	Timestamp          *string
	OrderOfBusiness    *string
	SubjectTitle       *string
	InterventionType   *string
	Text               *string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// Bill is a House or Senate bill from LEGISinfo.
type Bill struct {
	ID                 int64
	LegisinfoID        *int
	BillNumber         string
	TitleEn            *string
	TitleFr            *string
	Status             *string
	Parliament         *int
	Session            *int
	IntroducedDate     pgtype.Date
	LatestActivityDate pgtype.Timestamptz
	SponsorHocID       *int
	SponsorName        *string
	SponsorParty       *string
	SummaryEn          *string
	SummaryFr          *string
	SourceURL          *string
	SourceHash         *string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// MemberExpenditure is one category amount for one member in one quarterly
// disclosure period.
type MemberExpenditure struct {
	ID               int64
	RepresentativeID *int64
	HocID            *int
	MemberName       string
	Category         string
	Amount           float64
	PeriodStart      pgtype.Date
	PeriodEnd        pgtype.Date
	FiscalYear       *string
	SourceURL        *string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

// HouseOfficerExpenditure is one category amount for one house officer in
// one disclosure period.
type HouseOfficerExpenditure struct {
	ID          int64
	OfficerName string
	RoleTitle   *string
	Category    string
	Amount      float64
	PeriodStart pgtype.Date
	PeriodEnd   pgtype.Date
	FiscalYear  *string
	SourceURL   *string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// User is an account provisioned from the external auth provider.
type User struct {
	ID           pgtype.UUID
	AuthProvider string
	AuthUserID   string
	Email        *string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

// ApiKey is a metered access credential. Only the HMAC of the plaintext is
// stored.
type ApiKey struct {
	ID         pgtype.UUID
	UserID     pgtype.UUID
	KeyPrefix  string
	KeyHash    string
	Active     bool
	RevokedAt  pgtype.Timestamptz
	LastUsedAt pgtype.Timestamptz
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

// Billing is the subscription state mirrored from Stripe, one row per user.
type Billing struct {
	UserID               pgtype.UUID
	StripeCustomerID     *string
	StripeSubscriptionID *string
	Status               *string
	PriceID              *string
	CurrentPeriodStart   pgtype.Timestamptz
	CurrentPeriodEnd     pgtype.Timestamptz
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}
