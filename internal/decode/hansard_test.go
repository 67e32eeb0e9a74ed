package decode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

const hansardXML = `<?xml version="1.0" encoding="utf-8"?>
<Hansard>
  <ExtractedInformation>
    <ExtractedItem Name="ParliamentNumber">45</ExtractedItem>
    <ExtractedItem Name="SessionNumber">1</ExtractedItem>
    <ExtractedItem Name="Volume">152</ExtractedItem>
    <ExtractedItem Name="Number">012</ExtractedItem>
    <ExtractedItem Name="Date">Monday, June 16, 2025</ExtractedItem>
    <ExtractedItem Name="SpeakerName">The Honourable Francis Scarpaleggia</ExtractedItem>
  </ExtractedInformation>
  <HansardBody>
    <OrderOfBusiness>
      <OrderOfBusinessTitle>Government Orders</OrderOfBusinessTitle>
      <SubjectOfBusiness>
        <SubjectOfBusinessTitle>Free Trade and Labour Mobility Act</SubjectOfBusinessTitle>
        <SubjectOfBusinessContent>
          <FloorLanguage language="EN"/>
          <Timestamp Hr="10" Mn="5"/>
          <Intervention Type="Debate">
            <PersonSpeaking>
              <Affiliation>Hon. Anita Anand (Oakville East, Lib.)</Affiliation>
            </PersonSpeaking>
            <Content>
              <ParaText>Mr. Speaker, I rise today to speak to this bill.</ParaText>
              <FloorLanguage language="FR"/>
              <Timestamp Hr="10" Mn="15"/>
              <ParaText>Ce projet de loi <Sup>1</Sup> est important.</ParaText>
            </Content>
          </Intervention>
          <Intervention Type="Questions">
            <PersonSpeaking>
              <Affiliation>Mr. Pierre Poilievre (Carleton, CPC)</Affiliation>
            </PersonSpeaking>
            <Content>
              <ParaText>I have a question.</ParaText>
            </Content>
          </Intervention>
        </SubjectOfBusinessContent>
      </SubjectOfBusiness>
    </OrderOfBusiness>
  </HansardBody>
</Hansard>`

func TestHansard(t *testing.T) {
	header, interventions, err := decode.Hansard([]byte(hansardXML))
	require.NoError(t, err)

	require.NotNil(t, header.Date)
	assert.True(t, header.Date.Equal(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, header.Volume)
	assert.Equal(t, "152", *header.Volume)
	require.NotNil(t, header.Number)
	assert.Equal(t, "012", *header.Number)
	require.NotNil(t, header.SpeakerName)
	assert.Equal(t, "The Honourable Francis Scarpaleggia", *header.SpeakerName)
	require.NotNil(t, header.Parliament)
	assert.Equal(t, 45, *header.Parliament)
	require.NotNil(t, header.Session)
	assert.Equal(t, 1, *header.Session)

	require.Len(t, interventions, 2)

	first := interventions[0]
	require.NotNil(t, first.SpeakerAffiliation)
	assert.Equal(t, "Hon. Anita Anand (Oakville East, Lib.)", *first.SpeakerAffiliation)
	require.NotNil(t, first.SpeakerName)
	assert.Equal(t, "Hon. Anita Anand", *first.SpeakerName)
	require.NotNil(t, first.FloorLanguage)
	assert.Equal(t, "en", *first.FloorLanguage)
	require.NotNil(t, first.Timestamp)
	assert.Equal(t, "10:05", *first.Timestamp)
	require.NotNil(t, first.OrderOfBusiness)
	assert.Equal(t, "Government Orders", *first.OrderOfBusiness)
	require.NotNil(t, first.SubjectTitle)
	assert.Equal(t, "Free Trade and Labour Mobility Act", *first.SubjectTitle)
	require.NotNil(t, first.Type)
	assert.Equal(t, "Debate", *first.Type)
	require.NotNil(t, first.Text)
	assert.Equal(t,
		"Mr. Speaker, I rise today to speak to this bill.\n\nCe projet de loi 1 est important.",
		*first.Text)

	// Language and timestamp markup inside the first intervention shifts the
	// running context for the second one.
	second := interventions[1]
	require.NotNil(t, second.FloorLanguage)
	assert.Equal(t, "fr", *second.FloorLanguage)
	require.NotNil(t, second.Timestamp)
	assert.Equal(t, "10:15", *second.Timestamp)
	require.NotNil(t, second.SpeakerName)
	assert.Equal(t, "Mr. Pierre Poilievre", *second.SpeakerName)
	require.NotNil(t, second.Type)
	assert.Equal(t, "Questions", *second.Type)
}

func TestHansard_DateFallsBackToNumericParts(t *testing.T) {
	xmlDoc := `<Hansard>
  <ExtractedItem Name="MetaDateNumYear">2025</ExtractedItem>
  <ExtractedItem Name="MetaDateNumMonth">6</ExtractedItem>
  <ExtractedItem Name="MetaDateNumDay">3</ExtractedItem>
</Hansard>`
	header, interventions, err := decode.Hansard([]byte(xmlDoc))
	require.NoError(t, err)
	assert.Empty(t, interventions)
	require.NotNil(t, header.Date)
	assert.True(t, header.Date.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, header.Volume)
}

func TestHansard_SingleDigitTimestampPads(t *testing.T) {
	xmlDoc := `<Hansard><HansardBody>
  <Timestamp Hr="9" Mn="5"/>
  <Intervention><Content><ParaText>Morning.</ParaText></Content></Intervention>
</HansardBody></Hansard>`
	_, interventions, err := decode.Hansard([]byte(xmlDoc))
	require.NoError(t, err)
	require.Len(t, interventions, 1)
	require.NotNil(t, interventions[0].Timestamp)
	assert.Equal(t, "09:05", *interventions[0].Timestamp)
	assert.Nil(t, interventions[0].SpeakerName)
	assert.Nil(t, interventions[0].Type)
}

func TestHansard_BadXML(t *testing.T) {
	_, _, err := decode.Hansard([]byte("<Hansard><Intervention>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}
