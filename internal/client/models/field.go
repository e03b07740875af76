package models

// Field names a form field. The values match the JSON keys of UserRecord.
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldEmail       Field = "email"
	FieldPassword    Field = "password"
	FieldPhoneNumber Field = "phoneNumber"
	FieldBirthday    Field = "birthday"
	FieldGender      Field = "gender"
	FieldImage       Field = "image"
)

// RequiredFields are the validated fields in form order. Password is not
// one of them.
var RequiredFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldBirthday,
	FieldGender,
	FieldImage,
}

var fieldMessages = map[Field]string{
	FieldFirstName:   "Please enter your first name.",
	FieldLastName:    "Please enter your last name.",
	FieldEmail:       "Please enter your email.",
	FieldPassword:    "Please enter your password.",
	FieldPhoneNumber: "Please enter your phone number.",
	FieldBirthday:    "Please enter your birthday.",
	FieldGender:      "Please select your gender.",
	FieldImage:       "Please upload an image.",
}

var fieldLabels = map[Field]string{
	FieldFirstName:   "First Name",
	FieldLastName:    "Last Name",
	FieldEmail:       "Email",
	FieldPassword:    "Password",
	FieldPhoneNumber: "Phone Number",
	FieldBirthday:    "Birthday",
	FieldGender:      "Gender",
	FieldImage:       "Upload Image",
}

// Message is the inline hint shown when the field is invalid.
func (f Field) Message() string {
	return fieldMessages[f]
}

// Label is the human-readable field caption.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Known reports whether f is one of the form's fields.
func (f Field) Known() bool {
	_, ok := fieldMessages[f]
	return ok
}

// IsRequired reports whether f takes part in validation.
func (f Field) IsRequired() bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}
