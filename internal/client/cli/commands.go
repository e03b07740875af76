package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userform/internal/client/models"
	"github.com/dmitrijs2005/userform/internal/client/services"
	"github.com/dmitrijs2005/userform/internal/common"
)

var errFormHidden = errors.New("form is hidden")

// List prints the last fetched user table.
func (a *App) List(ctx context.Context) error {
	fmt.Fprintln(a.out, renderUsers(a.profile.Users().Snapshot()))
	return nil
}

// Refresh reloads the table from the server and prints it.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.profile.FetchUsers(ctx); err != nil {
		fmt.Fprintln(a.out, renderError("Failed to fetch user data: "+err.Error()))
		return err
	}
	return a.List(ctx)
}

// Add opens the new user form, or hides it when it is open.
func (a *App) Add(ctx context.Context) error {
	a.profile.ToggleAddNew()
	if !a.profile.FormVisible() {
		fmt.Fprintln(a.out, hintStyle.Render("Form hidden. Type 'add' to open it again."))
		return nil
	}
	return a.Show(ctx)
}

// Set edits one field of the open form.
func (a *App) Set(ctx context.Context, name, value string) error {
	if err := a.requireForm(); err != nil {
		return err
	}

	f, ok := parseField(name)
	if !ok {
		fmt.Fprintln(a.out, renderError("Unknown field: "+name))
		return fmt.Errorf("%s: %w", name, common.ErrUnknownField)
	}

	switch f {
	case models.FieldBirthday:
		return a.Birthday(ctx, value)
	case models.FieldImage:
		return a.Image(ctx, value)
	}

	if err := a.profile.SetField(ctx, f, value); err != nil {
		fmt.Fprintln(a.out, renderError(err.Error()))
		return err
	}
	a.printFieldStatus(f)
	if f == models.FieldGender && value != "" && !knownGender(value) {
		fmt.Fprintln(a.out, hintStyle.Render("Expected one of: "+genderList()))
	}
	return nil
}

func knownGender(v string) bool {
	for _, g := range models.Genders {
		if string(g) == v {
			return true
		}
	}
	return false
}

func genderList() string {
	names := make([]string, len(models.Genders))
	for i, g := range models.Genders {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// Birthday sets the birthday from a YYYY-MM-DD string.
func (a *App) Birthday(ctx context.Context, value string) error {
	if err := a.requireForm(); err != nil {
		return err
	}

	d, err := models.ParseDate(value)
	if err != nil {
		fmt.Fprintln(a.out, renderError("Invalid date, expected YYYY-MM-DD"))
		return err
	}
	if err := a.profile.SetField(ctx, models.FieldBirthday, d); err != nil {
		fmt.Fprintln(a.out, renderError(err.Error()))
		return err
	}
	a.printFieldStatus(models.FieldBirthday)
	return nil
}

// Password reads a password without echo into the draft.
func (a *App) Password(ctx context.Context) error {
	if err := a.requireForm(); err != nil {
		return err
	}

	prompt := passwordPrompt
	if a.profile.SelectedUserID() != "" {
		prompt = passwordKeepPrompt
	}

	pw, err := askPassword(a.out, prompt)
	if err != nil {
		a.logger.Error(ctx, "Failed to read password", "error", err)
		fmt.Fprintln(a.out, renderError("Failed to read password"))
		return err
	}
	defer clear(pw)

	return a.profile.SetField(ctx, models.FieldPassword, string(pw))
}

// Image attaches an image file to the draft.
func (a *App) Image(ctx context.Context, path string) error {
	if err := a.requireForm(); err != nil {
		return err
	}

	err := a.profile.SetImageFile(ctx, path)
	switch {
	case err == nil:
		a.printFieldStatus(models.FieldImage)
	case errors.Is(err, common.ErrNoImage):
		fmt.Fprintln(a.out, renderError("No image selected"))
	case errors.Is(err, common.ErrNotAnImage):
		fmt.Fprintln(a.out, renderError("Only image files are accepted"))
	default:
		fmt.Fprintln(a.out, renderError(err.Error()))
	}
	return err
}

// Show prints the open form.
func (a *App) Show(ctx context.Context) error {
	if err := a.requireForm(); err != nil {
		return err
	}

	title := "New user"
	if id := a.profile.SelectedUserID(); id != "" {
		title = "Editing user " + id
	}

	fmt.Fprintln(a.out, renderForm(formView{
		Draft:       a.profile.Form().Draft(),
		Validation:  a.profile.Form().Validation(),
		SubmitLabel: a.profile.SubmitLabel(),
		ImageFile:   a.profile.ImageFile(),
		Title:       title,
	}))
	return nil
}

// Submit sends the form and prints the refreshed table on success.
func (a *App) Submit(ctx context.Context) error {
	if err := a.requireForm(); err != nil {
		return err
	}

	updating := a.profile.SelectedUserID() != ""

	err := a.profile.Submit(ctx)

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		_ = a.Show(ctx)
		fmt.Fprintln(a.out, renderError("Please fill in the highlighted fields."))
		return err
	case err != nil && updating:
		fmt.Fprintln(a.out, renderError("Update failed: "+err.Error()))
		return err
	case err != nil:
		fmt.Fprintln(a.out, renderError("Form submission failed: "+err.Error()))
		return err
	}

	if updating {
		fmt.Fprintln(a.out, renderOK("Update successful"))
	} else {
		fmt.Fprintln(a.out, renderOK("Form submission successful"))
	}
	return a.List(ctx)
}

// Edit loads a user, chosen by table number or id, into the form.
func (a *App) Edit(ctx context.Context, ref string) error {
	u, err := a.resolveUser(ref)
	if err != nil {
		return err
	}
	a.profile.SelectForEdit(u)
	return a.Show(ctx)
}

// Delete removes a user, chosen by table number or id, after confirmation.
func (a *App) Delete(ctx context.Context, ref string) error {
	u, err := a.resolveUser(ref)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if !confirm(a.reader, fmt.Sprintf("Delete %s (%s)?", name, u.ID), a.out) {
		fmt.Fprintln(a.out, hintStyle.Render("Cancelled."))
		return nil
	}

	if err := a.profile.DeleteUser(ctx, u.ID); err != nil {
		fmt.Fprintln(a.out, renderError("Failed to delete user: "+err.Error()))
		return err
	}
	fmt.Fprintln(a.out, renderOK("User deleted successfully"))
	return a.List(ctx)
}

func (a *App) requireForm() error {
	if a.profile.FormVisible() {
		return nil
	}
	fmt.Fprintln(a.out, hintStyle.Render("The form is hidden. Type 'add' or 'edit <#|id>' first."))
	return errFormHidden
}

func (a *App) printFieldStatus(f models.Field) {
	if a.profile.Form().Validation().Invalid(f) {
		fmt.Fprintln(a.out, renderError(f.Message()))
		return
	}
	fmt.Fprintln(a.out, renderOK(f.Label()+" set"))
}

// resolveUser finds a listed user by its 1-based table number or by id.
func (a *App) resolveUser(ref string) (models.UserRecord, error) {
	users := a.profile.Users()

	if n, err := strconv.Atoi(ref); err == nil {
		if u, ok := users.At(n - 1); ok {
			return u, nil
		}
	}
	if u, ok := users.Find(ref); ok {
		return u, nil
	}

	fmt.Fprintln(a.out, renderError("No such user: "+ref))
	return models.UserRecord{}, fmt.Errorf("user %s: %w", ref, common.ErrorNotFound)
}

// parseField maps a field name typed by the user, case-insensitively.
func parseField(name string) (models.Field, bool) {
	for _, f := range models.RequiredFields {
		if strings.EqualFold(name, string(f)) {
			return f, true
		}
	}
	if strings.EqualFold(name, string(models.FieldPassword)) {
		return models.FieldPassword, true
	}
	return "", false
}
