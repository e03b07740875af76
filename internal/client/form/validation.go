package form

import "github.com/dmitrijs2005/userform/internal/client/models"

// Validation holds one flag per required field; true means invalid.
type Validation map[models.Field]bool

func newValidation() Validation {
	v := make(Validation, len(models.RequiredFields))
	for _, f := range models.RequiredFields {
		v[f] = false
	}
	return v
}

func (v Validation) clone() Validation {
	out := make(Validation, len(v))
	for k, flag := range v {
		out[k] = flag
	}
	return out
}

// Invalid reports the flag of a single field.
func (v Validation) Invalid(f models.Field) bool {
	return v[f]
}

// InvalidFields lists the flagged fields in form order.
func (v Validation) InvalidFields() []models.Field {
	var out []models.Field
	for _, f := range models.RequiredFields {
		if v[f] {
			out = append(out, f)
		}
	}
	return out
}

// Valid reports whether no field is flagged.
func (v Validation) Valid() bool {
	return len(v.InvalidFields()) == 0
}

// validateDraft is the wholesale pass: every required field is evaluated
// from the draft alone.
func validateDraft(d models.FormDraft) Validation {
	return Validation{
		models.FieldFirstName:   d.FirstName == "",
		models.FieldLastName:    d.LastName == "",
		models.FieldEmail:       d.Email == "",
		models.FieldPhoneNumber: d.PhoneNumber == "",
		models.FieldBirthday:    d.Birthday == "",
		models.FieldGender:      d.Gender == "",
		models.FieldImage:       d.Image == "",
	}
}
