package form

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/userform/internal/client/models"
	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

func fill(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.SetField(models.FieldFirstName, "Ann"))
	require.NoError(t, s.SetField(models.FieldLastName, "Lee"))
	require.NoError(t, s.SetField(models.FieldEmail, "ann@example.com"))
	require.NoError(t, s.SetField(models.FieldPhoneNumber, "5551234"))
	require.NoError(t, s.SetField(models.FieldBirthday, "1990-02-28"))
	require.NoError(t, s.SetField(models.FieldGender, models.GenderFemale))
	require.NoError(t, s.SetImage(testImage))
}

func TestSetField_IncrementalValidation(t *testing.T) {
	fields := []models.Field{
		models.FieldFirstName,
		models.FieldLastName,
		models.FieldEmail,
		models.FieldPhoneNumber,
		models.FieldGender,
		models.FieldImage,
	}

	for _, f := range fields {
		t.Run(string(f), func(t *testing.T) {
			s := NewStore()

			require.NoError(t, s.SetField(f, ""))
			assert.True(t, s.Validation().Invalid(f), "empty string must flag the field")

			require.NoError(t, s.SetField(f, "x"))
			assert.False(t, s.Validation().Invalid(f))

			require.NoError(t, s.SetField(f, nil))
			assert.True(t, s.Validation().Invalid(f), "nil must flag the field")

			for _, other := range models.RequiredFields {
				if other != f {
					assert.False(t, s.Validation().Invalid(other), "only %s may change", f)
				}
			}
		})
	}
}

func TestSetField_StoresRawValue(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.SetField(models.FieldFirstName, "  Ann "))
	require.NoError(t, s.SetField(models.FieldGender, "female"))
	require.NoError(t, s.SetField(models.FieldPhoneNumber, "+1 (555) 000"))

	d := s.Draft()
	assert.Equal(t, "  Ann ", d.FirstName)
	assert.Equal(t, models.GenderFemale, d.Gender)
	assert.Equal(t, "+1 (555) 000", d.PhoneNumber)
}

func TestSetField_PasswordIsNeverFlagged(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.SetField(models.FieldPassword, ""))
	require.NoError(t, s.SetField(models.FieldPassword, "secret"))

	assert.Equal(t, "secret", s.Draft().Password)
	_, tracked := s.Validation()[models.FieldPassword]
	assert.False(t, tracked)
}

func TestSetField_Birthday(t *testing.T) {
	t.Run("structured date", func(t *testing.T) {
		s := NewStore()
		require.False(t, s.Validate())
		require.True(t, s.Validation().Invalid(models.FieldBirthday))

		d := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
		require.NoError(t, s.SetField(models.FieldBirthday, d))

		assert.Equal(t, "2024-03-07", s.Draft().Birthday)
		assert.False(t, s.Validation().Invalid(models.FieldBirthday))
	})

	t.Run("models.Date", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.SetField(models.FieldBirthday, models.Date{Year: 1999, Month: time.December, Day: 31}))
		assert.Equal(t, "1999-12-31", s.Draft().Birthday)
	})

	t.Run("iso timestamp is truncated", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.SetField(models.FieldBirthday, "2024-05-01T10:00:00Z"))
		assert.Equal(t, "2024-05-01", s.Draft().Birthday)
	})

	t.Run("empty text still clears the flag", func(t *testing.T) {
		s := NewStore()
		s.Validate()
		require.NoError(t, s.SetField(models.FieldBirthday, ""))
		assert.Equal(t, "", s.Draft().Birthday)
		assert.False(t, s.Validation().Invalid(models.FieldBirthday))
	})

	t.Run("other types are rejected", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.SetField(models.FieldBirthday, "2000-01-01"))
		s.Validate()

		err := s.SetField(models.FieldBirthday, 20000101)
		require.ErrorIs(t, err, common.ErrInvalidInput)

		err = s.SetField(models.FieldBirthday, nil)
		require.ErrorIs(t, err, common.ErrInvalidInput)

		assert.Equal(t, "2000-01-01", s.Draft().Birthday)
	})
}

func TestSetField_Rejects(t *testing.T) {
	s := NewStore()

	err := s.SetField(models.Field("nickname"), "x")
	require.ErrorIs(t, err, common.ErrUnknownField)

	err = s.SetField(models.FieldEmail, 42)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, models.FormDraft{}, s.Draft())
}

func TestSetImage(t *testing.T) {
	s := NewStore()
	s.Validate()

	require.ErrorIs(t, s.SetImage(""), common.ErrNoImage)
	require.ErrorIs(t, s.SetImage("/tmp/a.png"), common.ErrInvalidInput)
	assert.Equal(t, "", s.Draft().Image)
	assert.True(t, s.Validation().Invalid(models.FieldImage))

	require.NoError(t, s.SetImage(testImage))
	assert.Equal(t, testImage, s.Draft().Image)
	assert.False(t, s.Validation().Invalid(models.FieldImage))
}

func TestValidate_AllPopulated(t *testing.T) {
	for _, pw := range []string{"", "hunter2"} {
		s := NewStore()
		fill(t, s)
		require.NoError(t, s.SetField(models.FieldPassword, pw))

		assert.True(t, s.Validate())
		assert.Empty(t, s.Validation().InvalidFields())
	}
}

func TestValidate_SingleMissingField(t *testing.T) {
	s := NewStore()
	fill(t, s)
	require.NoError(t, s.SetField(models.FieldFirstName, ""))

	assert.False(t, s.Validate())
	assert.Equal(t, []models.Field{models.FieldFirstName}, s.Validation().InvalidFields())
}

func TestValidate_FullReplace(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.SetField(models.FieldEmail, ""))
	require.True(t, s.Validation().Invalid(models.FieldEmail))

	require.NoError(t, s.SetField(models.FieldEmail, "ann@example.com"))
	require.NoError(t, s.SetField(models.FieldLastName, "Lee"))

	assert.False(t, s.Validate())
	assert.Equal(t, []models.Field{
		models.FieldFirstName,
		models.FieldPhoneNumber,
		models.FieldBirthday,
		models.FieldGender,
		models.FieldImage,
	}, s.Validation().InvalidFields())
}

func TestReset_KeepsValidation(t *testing.T) {
	s := NewStore()
	fill(t, s)
	require.NoError(t, s.SetField(models.FieldPassword, "pw"))
	require.NoError(t, s.SetField(models.FieldEmail, ""))

	s.Reset()

	assert.Equal(t, models.FormDraft{}, s.Draft())
	assert.True(t, s.Validation().Invalid(models.FieldEmail))

	s.ClearValidation()
	assert.True(t, s.Validation().Valid())
}

func TestLoad(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetField(models.FieldPassword, "old"))

	s.Load(models.UserRecord{
		ID: "1", FirstName: "Bob", Birthday: "1985-07-04T00:00:00.000Z", Gender: models.GenderMale,
	})

	d := s.Draft()
	assert.Equal(t, "Bob", d.FirstName)
	assert.Equal(t, "1985-07-04", d.Birthday)
	assert.Equal(t, "", d.Password)

	date, ok := s.BirthdayDate()
	require.True(t, ok)
	assert.Equal(t, models.Date{Year: 1985, Month: time.July, Day: 4}, date)
}

func TestValidation_IsACopy(t *testing.T) {
	s := NewStore()
	v := s.Validation()
	v[models.FieldEmail] = true

	assert.False(t, s.Validation().Invalid(models.FieldEmail))
}
