package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/userform/internal/client/form"
	"github.com/dmitrijs2005/userform/internal/client/models"
	"github.com/dmitrijs2005/userform/internal/filex"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var userColumns = []string{
	"#", "First Name", "Last Name", "Email", "Phone Number", "Birthday", "Gender", "Image", "Actions",
}

// renderUsers draws the user table. Rows are numbered from 1; the number is
// what edit and delete accept.
func renderUsers(users []models.UserRecord) string {
	if len(users) == 0 {
		return hintStyle.Render("No users yet. Type 'add' to create one.")
	}

	rows := make([][]string, 0, len(users))
	for i, u := range users {
		n := strconv.Itoa(i + 1)
		rows = append(rows, []string{
			n,
			u.FirstName,
			u.LastName,
			u.Email,
			u.PhoneNumber,
			models.TrimTime(u.Birthday),
			string(u.Gender),
			imageSummary(u.Image, ""),
			"edit " + n + " | delete " + n,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(userColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.Render()
}

// imageSummary is the short form of an image shown in tables and the form:
// the chosen file name when known, else the data URI media type.
func imageSummary(dataURI, fileName string) string {
	if dataURI == "" {
		return "-"
	}
	if fileName != "" {
		return fileName
	}
	if mt := filex.DataURIMediaType(dataURI); mt != "" {
		return mt
	}
	return "(image)"
}

type formView struct {
	Draft       models.FormDraft
	Validation  form.Validation
	SubmitLabel string
	ImageFile   string
	Title       string
}

// renderForm draws the draft one field per line with the inline message of
// every flagged field under it.
func renderForm(v formView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")

	field := func(f models.Field, value string) {
		fmt.Fprintf(&b, "  %-14s %s\n", f.Label()+":", value)
		if v.Validation.Invalid(f) {
			fmt.Fprintf(&b, "  %-14s %s\n", "", errorStyle.Render(f.Message()))
		}
	}

	d := v.Draft
	field(models.FieldFirstName, d.FirstName)
	field(models.FieldLastName, d.LastName)
	field(models.FieldEmail, d.Email)
	field(models.FieldPassword, strings.Repeat("*", len(d.Password)))
	field(models.FieldPhoneNumber, d.PhoneNumber)
	field(models.FieldBirthday, d.Birthday)
	field(models.FieldGender, string(d.Gender))
	field(models.FieldImage, imageSummary(d.Image, v.ImageFile))

	b.WriteString(hintStyle.Render("  [" + v.SubmitLabel + "] type 'submit'"))
	return b.String()
}

func renderError(msg string) string {
	return errorStyle.Render(msg)
}

func renderOK(msg string) string {
	return okStyle.Render(msg)
}
