package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	var u EventUpdate
	err := json.Unmarshal([]byte(`{"title":"Launch","location":null}`), &u)
	require.NoError(t, err)

	assert.True(t, u.Title.IsSet())
	assert.False(t, u.Title.IsNull())
	assert.Equal(t, "Launch", u.Title.Value)

	assert.True(t, u.Location.IsSet())
	assert.True(t, u.Location.IsNull())
	assert.Nil(t, u.Location.SQLValue())

	assert.False(t, u.Description.IsSet())
	assert.False(t, u.MaxAttendees.IsSet())
}

func TestOptional_ZeroValueIsPresent(t *testing.T) {
	var u TaskUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"completed":false,"description":""}`), &u))

	assert.True(t, u.Completed.IsSet())
	assert.Equal(t, false, u.Completed.SQLValue())
	assert.True(t, u.Description.IsSet())
	assert.Equal(t, "", u.Description.SQLValue())
}

func TestOptional_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
		C Optional[int]    `json:"c"`
	}{A: Some("x"), B: Null[string](), C: Optional[int]{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null,"c":null}`, string(out))
}

func TestDecode_Event(t *testing.T) {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		body := `{"title":"Meetup","start_datetime":"2025-03-01T18:00:00Z","end_datetime":"2025-03-01T20:00:00Z","created_by":1,"max_attendees":30}`
		e, err := Decode[Event](strings.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, "Meetup", e.Title)
		assert.True(t, start.Equal(e.StartDatetime))
		assert.Nil(t, e.Description)
		require.NotNil(t, e.MaxAttendees)
		assert.Equal(t, 30, *e.MaxAttendees)
	})

	t.Run("missing required fields are all listed", func(t *testing.T) {
		_, err := Decode[Event](strings.NewReader(`{"description":"no title"}`))
		assert.ElementsMatch(t, []string{"title", "start_datetime", "end_datetime", "created_by"}, fieldNames(t, err))
	})

	t.Run("wrong type", func(t *testing.T) {
		body := `{"title":"x","start_datetime":"2025-03-01T18:00:00Z","end_datetime":"2025-03-01T20:00:00Z","created_by":"one"}`
		_, err := Decode[Event](strings.NewReader(body))
		assert.Equal(t, []string{"created_by"}, fieldNames(t, err))
	})

	t.Run("unparseable timestamp", func(t *testing.T) {
		body := `{"title":"x","start_datetime":"tomorrow","end_datetime":"2025-03-01T20:00:00Z","created_by":1}`
		_, err := Decode[Event](strings.NewReader(body))
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode[Event](strings.NewReader(`{invalid json}`))
		assert.Equal(t, []string{"body"}, fieldNames(t, err))
	})

	t.Run("negative id", func(t *testing.T) {
		body := `{"title":"x","start_datetime":"2025-03-01T18:00:00Z","end_datetime":"2025-03-01T20:00:00Z","created_by":-4}`
		_, err := Decode[Event](strings.NewReader(body))
		assert.Equal(t, []string{"created_by"}, fieldNames(t, err))
	})
}

func TestDecode_UserRegistration(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@x.com","username":"ada","password":"analytical"}`
		reg, err := Decode[UserRegistration](strings.NewReader(body))
		require.NoError(t, err)

		u := reg.ToUser("hash")
		assert.Equal(t, User{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "ada@x.com",
			Username:     "ada",
			PasswordHash: "hash",
			Admin:        false,
			Active:       true,
		}, u)
	})

	t.Run("explicit flags", func(t *testing.T) {
		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@x.com","username":"ada","password":"p","admin":true,"active":false}`
		reg, err := Decode[UserRegistration](strings.NewReader(body))
		require.NoError(t, err)
		u := reg.ToUser("hash")
		assert.True(t, u.Admin)
		assert.False(t, u.Active)
	})

	t.Run("bad email", func(t *testing.T) {
		body := `{"first_name":"Ada","last_name":"Lovelace","email":"not-an-email","username":"ada","password":"p"}`
		_, err := Decode[UserRegistration](strings.NewReader(body))
		assert.Equal(t, []string{"email"}, fieldNames(t, err))
	})

	t.Run("admin must be boolean", func(t *testing.T) {
		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@x.com","username":"ada","password":"p","admin":"yes"}`
		_, err := Decode[UserRegistration](strings.NewReader(body))
		assert.Equal(t, []string{"admin"}, fieldNames(t, err))
	})
}

func TestUser_PasswordHashNotRendered(t *testing.T) {
	out, err := json.Marshal(User{ID: 1, Username: "ada", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
	assert.NotContains(t, string(out), "password")
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		decode func(string) error
		fields []string
	}{
		{
			name:   "empty user update is valid",
			body:   `{}`,
			decode: func(b string) error { _, err := Decode[UserUpdate](strings.NewReader(b)); return err },
		},
		{
			name:   "user email cannot be null",
			body:   `{"email":null}`,
			decode: func(b string) error { _, err := Decode[UserUpdate](strings.NewReader(b)); return err },
			fields: []string{"email"},
		},
		{
			name:   "user email format",
			body:   `{"email":"nope"}`,
			decode: func(b string) error { _, err := Decode[UserUpdate](strings.NewReader(b)); return err },
			fields: []string{"email"},
		},
		{
			name:   "event nullable columns may be cleared",
			body:   `{"description":null,"location":null,"max_attendees":null}`,
			decode: func(b string) error { _, err := Decode[EventUpdate](strings.NewReader(b)); return err },
		},
		{
			name:   "event title and times cannot be null",
			body:   `{"title":null,"start_datetime":null}`,
			decode: func(b string) error { _, err := Decode[EventUpdate](strings.NewReader(b)); return err },
			fields: []string{"title", "start_datetime"},
		},
		{
			name:   "attendance status must be known",
			body:   `{"status":"perhaps"}`,
			decode: func(b string) error { _, err := Decode[AttendanceUpdate](strings.NewReader(b)); return err },
			fields: []string{"status"},
		},
		{
			name:   "task completed cannot be null",
			body:   `{"completed":null,"assigned_to":null}`,
			decode: func(b string) error { _, err := Decode[TaskUpdate](strings.NewReader(b)); return err },
			fields: []string{"completed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(tt.body)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestAttendanceStatus(t *testing.T) {
	assert.True(t, StatusGoing.Valid())
	assert.True(t, StatusNotGoing.Valid())
	assert.True(t, StatusMaybe.Valid())
	assert.False(t, AttendanceStatus("GOING").Valid())
	assert.NoError(t, StatusMaybe.Validate())
	assert.Error(t, AttendanceStatus("").Validate())

	_, err := Decode[Attendance](strings.NewReader(`{"user_id":1,"event_id":2,"status":"sometimes"}`))
	assert.Equal(t, []string{"status"}, fieldNames(t, err))
}

func TestAttendanceUpdate_StatusBindsAsText(t *testing.T) {
	u := AttendanceUpdate{Status: Some(StatusGoing)}
	f := u.Fields()["status"]
	assert.True(t, f.IsSet())
	assert.Equal(t, "going", f.SQLValue())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "title", Message: "is required"}, {Field: "created_by", Message: "is required"}}}
	assert.Equal(t, "validation failed: title: is required; created_by: is required", err.Error())
}
