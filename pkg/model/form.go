package model

// FieldType is the input kind a renderer should use for a field.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeEmail  FieldType = "email"
	FieldTypePhone  FieldType = "tel"
	FieldTypeSelect FieldType = "select"
	FieldTypeDate   FieldType = "date"
	FieldTypeTags   FieldType = "tags"
)

// Option is a selectable choice for select fields.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Field describes a single input inside the form.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Prefix      string    `json:"prefix,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Section groups fields under a heading.
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// FormModel is the top-level description renderers consume.
type FormModel struct {
	ID       string    `json:"id"`
	Sections []Section `json:"sections"`
}

// Fields flattens the sections in display order.
func (f FormModel) Fields() []Field {
	var out []Field
	for _, section := range f.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// Field looks up a field by name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields() {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// ProfileForm returns the catalogue for the basic details form.
func ProfileForm() FormModel {
	genderOptions := make([]Option, 0, len(Genders()))
	for _, g := range Genders() {
		genderOptions = append(genderOptions, Option{Label: g.Label(), Value: string(g)})
	}

	return FormModel{
		ID: "profile",
		Sections: []Section{
			{
				Title: "Basic Details",
				Fields: []Field{
					{Name: FieldFirstName, Type: FieldTypeText, Label: "First Name", Placeholder: "Enter your first name"},
					{Name: FieldLastName, Type: FieldTypeText, Label: "Last Name", Placeholder: "Enter your last name"},
				},
			},
			{
				Title: "Other Details",
				Fields: []Field{
					{Name: FieldEmail, Type: FieldTypeEmail, Label: "Email Address", Placeholder: "Enter your email address"},
					{Name: FieldPhoneNumber, Type: FieldTypePhone, Label: "Phone Number", Placeholder: "Enter your phone number", Prefix: "+91"},
					{Name: FieldGender, Type: FieldTypeSelect, Label: "Gender", Placeholder: "Select Gender", Options: genderOptions},
					{Name: FieldDateOfBirth, Type: FieldTypeDate, Label: "Date of Birth", Placeholder: "yyyy-mm-dd"},
					{Name: FieldTechStack, Type: FieldTypeTags, Label: "Tech Stack", Placeholder: "Enter a tech stack"},
				},
			},
		},
	}
}
