package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

const membersXML = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfMemberOfParliament xmlns="http://www.ourcommons.ca">
  <MemberOfParliament>
    <PersonId>105123</PersonId>
    <PersonShortHonorific>Hon.</PersonShortHonorific>
    <PersonOfficialFirstName>Anita</PersonOfficialFirstName>
    <PersonOfficialLastName>Anand</PersonOfficialLastName>
    <PersonEmail>anita.anand@parl.gc.ca</PersonEmail>
    <PersonTelephone>613-992-0000</PersonTelephone>
    <ConstituencyName>Oakville East</ConstituencyName>
    <ConstituencyProvinceTerritoryName>Ontario</ConstituencyProvinceTerritoryName>
    <CaucusShortName>Liberal</CaucusShortName>
  </MemberOfParliament>
  <MemberOfParliament>
    <PersonId>89156</PersonId>
    <PersonOfficialFirstName>Ziad</PersonOfficialFirstName>
    <PersonOfficialLastName>Aboultaif</PersonOfficialLastName>
    <Email>ziad.aboultaif@parl.gc.ca</Email>
    <ConstituencyName>Edmonton Manning</ConstituencyName>
    <ConstituencyProvinceTerritoryName>Alberta</ConstituencyProvinceTerritoryName>
    <CaucusShortName>Conservative</CaucusShortName>
  </MemberOfParliament>
  <MemberOfParliament>
    <PersonId></PersonId>
    <PersonOfficialFirstName>No</PersonOfficialFirstName>
    <PersonOfficialLastName>Id</PersonOfficialLastName>
  </MemberOfParliament>
</ArrayOfMemberOfParliament>`

func TestMembers(t *testing.T) {
	members, err := decode.Members([]byte(membersXML))
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, 105123, members[0].HocID)
	assert.Equal(t, "Anita", members[0].FirstName)
	assert.Equal(t, "Anand", members[0].LastName)
	assert.Equal(t, "Hon.", members[0].Honorific)
	assert.Equal(t, "anita.anand@parl.gc.ca", members[0].Email)
	assert.Equal(t, "613-992-0000", members[0].Phone)
	assert.Equal(t, "Oakville East", members[0].Constituency)
	assert.Equal(t, "Ontario", members[0].Province)
	assert.Equal(t, "Liberal", members[0].Caucus)

	// Email falls back to the alternate element name.
	assert.Equal(t, 89156, members[1].HocID)
	assert.Equal(t, "ziad.aboultaif@parl.gc.ca", members[1].Email)
	assert.Empty(t, members[1].Honorific)
}

func TestMembers_BadXML(t *testing.T) {
	_, err := decode.Members([]byte("<ArrayOfMemberOfParliament><MemberOfParliament>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}
