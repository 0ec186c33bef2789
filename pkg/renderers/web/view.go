package web

import (
	"context"
	"strconv"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
)

// The page template sees these through a JSON round trip, so the json tags are
// the template variable names. Indices travel as strings to avoid float
// formatting.
type pageView struct {
	Title        string               `json:"title"`
	Theme        string               `json:"theme"`
	Variant      string               `json:"variant"`
	ThemeStyle   string               `json:"themeStyle"`
	Stylesheet   string               `json:"stylesheet"`
	Hidden       []render.HiddenField `json:"hidden"`
	Sections     []sectionView        `json:"sections"`
	Tags         []tagView            `json:"tags"`
	FocusTags    bool                 `json:"focusTags"`
	MaxDate      string               `json:"maxDate"`
	Submitting   bool                 `json:"submitting"`
	FormErrors   []string             `json:"formErrors,omitempty"`
	Notice       *formstate.Notice    `json:"notice,omitempty"`
	SummaryTitle string               `json:"summaryTitle"`
	Summary      present.Summary      `json:"summary,omitempty"`
}

type sectionView struct {
	Title  string      `json:"title"`
	Fields []fieldView `json:"fields"`
}

type fieldView struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Label       string       `json:"label"`
	Placeholder string       `json:"placeholder"`
	Prefix      string       `json:"prefix,omitempty"`
	Value       string       `json:"value"`
	Error       string       `json:"error,omitempty"`
	Options     []optionView `json:"options,omitempty"`
}

type optionView struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type tagView struct {
	Index string `json:"index"`
	Label string `json:"label"`
}

func (h *Handler) pageView(_ context.Context, entry *browserSession) pageView {
	state := entry.form.State()
	values := state.Values()

	errs := render.MapMessages(h.form, state.Errors(), state.FormError())

	view := pageView{
		Title:        h.title,
		Theme:        h.theme.Theme,
		Variant:      h.theme.Variant,
		ThemeStyle:   cssVarsStyle(h.theme.CSSVars),
		Stylesheet:   assetURL(h.theme, "stylesheet", "/assets/"+StylesheetName),
		Hidden:       render.HiddenFields(render.CSRFToken(entry.csrf)),
		FocusTags:    entry.focusTags.Swap(false),
		MaxDate:      h.now().Format(model.DateLayout),
		Submitting:   state.Submitting(),
		FormErrors:   errs.Form,
		SummaryTitle: render.DefaultTitle,
	}

	for _, section := range h.form.Sections {
		sv := sectionView{Title: section.Title}
		for _, field := range section.Fields {
			fv := fieldView{
				Name:        field.Name,
				Type:        string(field.Type),
				Label:       field.Label,
				Placeholder: field.Placeholder,
				Prefix:      field.Prefix,
				Value:       fieldValue(state, values, field.Name),
				Error:       errs.FieldMessage(field.Name),
			}
			for _, opt := range field.Options {
				fv.Options = append(fv.Options, optionView{
					Label:    opt.Label,
					Value:    opt.Value,
					Selected: opt.Value == fv.Value,
				})
			}
			sv.Fields = append(sv.Fields, fv)
		}
		view.Sections = append(view.Sections, sv)
	}

	for i, tag := range values.TechStack {
		view.Tags = append(view.Tags, tagView{Index: strconv.Itoa(i), Label: tag})
	}

	if snapshot, ok := state.Snapshot(); ok {
		view.Summary = h.presenter.Present(snapshot)
		// The notice is shown on the first page view after each submission.
		stamp := snapshot.SubmittedAt().UnixNano()
		if state.Phase() == formstate.PhaseSubmitted && entry.noticed.Swap(stamp) != stamp {
			notice := formstate.SubmittedNotice
			view.Notice = &notice
		}
	}
	return view
}

func fieldValue(state formstate.State, values model.Record, name string) string {
	switch name {
	case model.FieldFirstName:
		return values.FirstName
	case model.FieldLastName:
		return values.LastName
	case model.FieldGender:
		return string(values.Gender)
	case model.FieldDateOfBirth:
		return values.DateOfBirth
	case model.FieldTechStack:
		return state.Pending()
	case model.FieldEmail:
		return values.Email
	case model.FieldPhoneNumber:
		return values.PhoneNumber
	default:
		return ""
	}
}
