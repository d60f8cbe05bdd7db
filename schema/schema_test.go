package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestInsertUserValidate(t *testing.T) {
	valid := InsertUser{Username: "criador", Password: "123456", Name: "João"}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		in    InsertUser
		field string
	}{
		{"missing username", InsertUser{Password: "x", Name: "x"}, "username"},
		{"missing password", InsertUser{Username: "x", Name: "x"}, "password"},
		{"missing name", InsertUser{Username: "x", Password: "x"}, "name"},
		{"bad role", InsertUser{Username: "x", Password: "x", Name: "x", Role: "king"}, "role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	withRole := InsertUser{Username: "org", Password: "x", Name: "x", Role: "organizer"}
	assert.NoError(t, withRole.Validate())
}

func TestInsertBirdValidate(t *testing.T) {
	valid := InsertBird{Name: "Trovão", Species: "Coleiro"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&InsertBird{Species: "Coleiro"}).Validate())
	assert.Error(t, (&InsertBird{Name: "Trovão"}).Validate())
}

func TestBirdUpdateValidate(t *testing.T) {
	// Nil fields mean "leave unchanged" and are always fine.
	assert.NoError(t, (&BirdUpdate{}).Validate())
	assert.NoError(t, (&BirdUpdate{Notes: strptr("")}).Validate())

	// Present-but-empty name or species is rejected.
	assert.Error(t, (&BirdUpdate{Name: strptr("")}).Validate())
	assert.Error(t, (&BirdUpdate{Species: strptr("")}).Validate())
	assert.NoError(t, (&BirdUpdate{Name: strptr("Relâmpago")}).Validate())
}

func TestInsertTrainingValidate(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := InsertTraining{BirdID: 1, Date: date, Type: "fibra", Duration: 65, SongCount: 10}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&InsertTraining{Date: date, Type: "fibra"}).Validate())
	assert.Error(t, (&InsertTraining{BirdID: 1, Type: "fibra"}).Validate())
	assert.Error(t, (&InsertTraining{BirdID: 1, Date: date}).Validate())
	assert.Error(t, (&InsertTraining{BirdID: 1, Date: date, Type: "fibra", Duration: -1}).Validate())
	assert.Error(t, (&InsertTraining{BirdID: 1, Date: date, Type: "fibra", SongCount: -1}).Validate())

	// Zero duration and zero songs are legitimate sessions.
	zero := InsertTraining{BirdID: 1, Date: date, Type: "canto"}
	assert.NoError(t, zero.Validate())
}

func TestInsertTournamentValidate(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	valid := InsertTournament{Name: "Regional", Location: "Fortaleza", Date: date, EntryFee: 5000}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&InsertTournament{Location: "x", Date: date}).Validate())
	assert.Error(t, (&InsertTournament{Name: "x", Date: date}).Validate())
	assert.Error(t, (&InsertTournament{Name: "x", Location: "x"}).Validate())
	assert.Error(t, (&InsertTournament{Name: "x", Location: "x", Date: date, EntryFee: -1}).Validate())
	assert.Error(t, (&InsertTournament{Name: "x", Location: "x", Date: date, Status: "done"}).Validate())
	assert.NoError(t, (&InsertTournament{Name: "x", Location: "x", Date: date, Status: "closed"}).Validate())
}

func TestEnrollRequestValidate(t *testing.T) {
	assert.Error(t, (&EnrollRequest{}).Validate())
	assert.NoError(t, (&EnrollRequest{BirdID: 3}).Validate())
}

func TestValidateResults(t *testing.T) {
	assert.Error(t, ValidateResults(nil))
	assert.Error(t, ValidateResults([]ResultEntry{}))
	assert.Error(t, ValidateResults([]ResultEntry{{Score: 10}}))
	assert.NoError(t, ValidateResults([]ResultEntry{
		{EnrollmentID: 1, Score: 85, Rank: 1},
		{EnrollmentID: 2, Score: 70, Rank: 2},
	}))
}
