package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the full query surface of this package. Services depend on it
// instead of *Queries so tests can substitute a mock.
type Querier interface {
	CountBills(ctx context.Context, arg CountBillsParams) (int64, error)
	CountDebates(ctx context.Context, arg CountDebatesParams) (int64, error)
	CountHouseOfficerExpenditures(ctx context.Context, arg CountHouseOfficerExpendituresParams) (int64, error)
	CountMemberExpenditures(ctx context.Context, arg CountMemberExpendituresParams) (int64, error)
	CountParties(ctx context.Context) (int64, error)
	CountPartyStandings(ctx context.Context, arg CountPartyStandingsParams) (int64, error)
	CountPetitions(ctx context.Context, arg CountPetitionsParams) (int64, error)
	CountRepresentativeRoles(ctx context.Context, arg CountRepresentativeRolesParams) (int64, error)
	CountRepresentatives(ctx context.Context, arg CountRepresentativesParams) (int64, error)
	CountRidings(ctx context.Context, province *string) (int64, error)
	CountVotes(ctx context.Context, arg CountVotesParams) (int64, error)
	CreateApiKey(ctx context.Context, arg CreateApiKeyParams) (ApiKey, error)
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	CreateBilling(ctx context.Context, arg CreateBillingParams) (Billing, error)
	CreateDebate(ctx context.Context, arg CreateDebateParams) (Debate, error)
	CreateDebateIntervention(ctx context.Context, arg CreateDebateInterventionParams) error
	CreateHouseOfficerExpenditure(ctx context.Context, arg CreateHouseOfficerExpenditureParams) (HouseOfficerExpenditure, error)
	CreateMemberExpenditure(ctx context.Context, arg CreateMemberExpenditureParams) (MemberExpenditure, error)
	CreateParty(ctx context.Context, arg CreatePartyParams) (Party, error)
	CreatePartyStanding(ctx context.Context, arg CreatePartyStandingParams) (PartyStanding, error)
	CreatePetition(ctx context.Context, arg CreatePetitionParams) (Petition, error)
	CreateRepresentative(ctx context.Context, arg CreateRepresentativeParams) (Representative, error)
	CreateRepresentativeRole(ctx context.Context, arg CreateRepresentativeRoleParams) (RepresentativeRole, error)
	CreateRiding(ctx context.Context, arg CreateRidingParams) (Riding, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	CreateVote(ctx context.Context, arg CreateVoteParams) (Vote, error)
	CreateVoteMember(ctx context.Context, arg CreateVoteMemberParams) error
	DeactivateApiKeysForUser(ctx context.Context, userID pgtype.UUID) error
	DeleteDebateInterventions(ctx context.Context, debateID int64) error
	DeleteHouseOfficerExpendituresForPeriod(ctx context.Context, arg DeleteHouseOfficerExpendituresForPeriodParams) error
	DeleteMemberExpendituresForPeriod(ctx context.Context, arg DeleteMemberExpendituresForPeriodParams) error
	DeleteRepresentativeRoles(ctx context.Context, representativeID int64) error
	DeleteVoteMembers(ctx context.Context, voteID int64) error
	GetActiveApiKeyForUser(ctx context.Context, userID pgtype.UUID) (ApiKey, error)
	GetActiveRepresentativeByRidingID(ctx context.Context, ridingID int64) (Representative, error)
	GetApiKeyByHash(ctx context.Context, keyHash string) (ApiKey, error)
	GetBill(ctx context.Context, id int64) (Bill, error)
	GetBillByNumber(ctx context.Context, arg GetBillByNumberParams) (Bill, error)
	GetBillingByCustomerID(ctx context.Context, stripeCustomerID string) (Billing, error)
	GetBillingByUserID(ctx context.Context, userID pgtype.UUID) (Billing, error)
	GetDebate(ctx context.Context, id int64) (Debate, error)
	GetDebateBySitting(ctx context.Context, arg GetDebateBySittingParams) (Debate, error)
	GetLatestStandingDate(ctx context.Context, arg GetLatestStandingDateParams) (pgtype.Date, error)
	GetMaxDebateSitting(ctx context.Context, arg GetMaxDebateSittingParams) (*int, error)
	GetParty(ctx context.Context, id int64) (Party, error)
	GetPartyByName(ctx context.Context, name string) (Party, error)
	GetPartyStanding(ctx context.Context, arg GetPartyStandingParams) (PartyStanding, error)
	GetPetition(ctx context.Context, id int64) (Petition, error)
	GetPetitionByNumber(ctx context.Context, petitionNumber string) (Petition, error)
	GetRepresentativeByHocID(ctx context.Context, hocID int) (Representative, error)
	GetRiding(ctx context.Context, id int64) (Riding, error)
	GetRidingByNameAndProvince(ctx context.Context, arg GetRidingByNameAndProvinceParams) (Riding, error)
	GetRidingByPoint(ctx context.Context, arg GetRidingByPointParams) (Riding, error)
	GetUser(ctx context.Context, id pgtype.UUID) (User, error)
	GetUserByAuthUserID(ctx context.Context, arg GetUserByAuthUserIDParams) (User, error)
	GetUserForUpdate(ctx context.Context, id pgtype.UUID) (User, error)
	GetVote(ctx context.Context, id int64) (Vote, error)
	GetVoteByNumber(ctx context.Context, arg GetVoteByNumberParams) (Vote, error)
	ListActiveRepresentatives(ctx context.Context) ([]Representative, error)
	ListAllRepresentatives(ctx context.Context) ([]Representative, error)
	ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error)
	ListDebateInterventions(ctx context.Context, debateID int64) ([]DebateIntervention, error)
	ListDebates(ctx context.Context, arg ListDebatesParams) ([]Debate, error)
	ListHouseOfficerExpenditures(ctx context.Context, arg ListHouseOfficerExpendituresParams) ([]HouseOfficerExpenditure, error)
	ListMemberExpenditures(ctx context.Context, arg ListMemberExpendituresParams) ([]MemberExpenditure, error)
	ListParties(ctx context.Context, arg ListPartiesParams) ([]Party, error)
	ListPartiesByIDs(ctx context.Context, ids []int64) ([]Party, error)
	ListPartyStandings(ctx context.Context, arg ListPartyStandingsParams) ([]PartyStanding, error)
	ListPetitions(ctx context.Context, arg ListPetitionsParams) ([]Petition, error)
	ListRepresentativeRoles(ctx context.Context, arg ListRepresentativeRolesParams) ([]ListRepresentativeRolesRow, error)
	ListRepresentatives(ctx context.Context, arg ListRepresentativesParams) ([]Representative, error)
	ListRidings(ctx context.Context, arg ListRidingsParams) ([]Riding, error)
	ListRidingsByIDs(ctx context.Context, ids []int64) ([]Riding, error)
	ListVoteMembers(ctx context.Context, voteID int64) ([]VoteMember, error)
	ListVoteMembersForVotes(ctx context.Context, voteIDs []int64) ([]VoteMember, error)
	ListVotes(ctx context.Context, arg ListVotesParams) ([]Vote, error)
	Ping(ctx context.Context) error
	SetApiKeyActive(ctx context.Context, arg SetApiKeyActiveParams) error
	TouchApiKeyLastUsed(ctx context.Context, id pgtype.UUID) error
	UpdateBill(ctx context.Context, arg UpdateBillParams) (Bill, error)
	UpdateBilling(ctx context.Context, arg UpdateBillingParams) (Billing, error)
	UpdateDebate(ctx context.Context, arg UpdateDebateParams) (Debate, error)
	UpdatePartyStanding(ctx context.Context, arg UpdatePartyStandingParams) (PartyStanding, error)
	UpdatePetition(ctx context.Context, arg UpdatePetitionParams) (Petition, error)
	UpdateRepresentative(ctx context.Context, arg UpdateRepresentativeParams) (Representative, error)
	UpdateUserEmail(ctx context.Context, arg UpdateUserEmailParams) (User, error)
	UpdateVote(ctx context.Context, arg UpdateVoteParams) (Vote, error)
}

var _ Querier = (*Queries)(nil)
