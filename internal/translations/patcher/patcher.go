// Package patcher merges the fixed translation overlay into locale files.
package patcher

import (
	"github.com/louisbranch/i18n-overlay/internal/translations/jsondoc"
	"github.com/louisbranch/i18n-overlay/internal/translations/overlay"
)

// Patch loads the JSON object at path, applies the overlay for the selected
// language and writes the result back. Nothing is written when loading or
// applying fails.
func Patch(path string, french bool) error {
	doc, err := jsondoc.Load(path)
	if err != nil {
		return err
	}
	if err := Apply(doc, french); err != nil {
		return err
	}
	return doc.Save(path)
}

// PatchBytes applies the overlay to data and returns the rendered result.
func PatchBytes(data []byte, french bool) ([]byte, error) {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := Apply(doc, french); err != nil {
		return nil, err
	}
	return doc.Bytes(), nil
}

// Apply overwrites every overlay path in doc. Sibling keys are left untouched.
func Apply(doc *jsondoc.Document, french bool) error {
	countries, err := tableObject(overlay.Countries(), french)
	if err != nil {
		return err
	}
	if err := doc.SetObject(countries, overlay.KeyCountryList); err != nil {
		return err
	}

	enums := jsondoc.NewObject()
	for _, group := range overlay.Enums() {
		obj, err := tableObject(group.Entries, french)
		if err != nil {
			return err
		}
		if err := enums.SetObject(obj, group.Name); err != nil {
			return err
		}
	}
	if err := doc.SetObject(enums, overlay.KeyEnums); err != nil {
		return err
	}

	if err := doc.EnsureObject(overlay.KeyProfile, overlay.KeyPassport); err != nil {
		return err
	}
	for _, e := range overlay.Passport() {
		if err := doc.SetString(e.Label.Pick(french), overlay.KeyProfile, overlay.KeyPassport, e.Key); err != nil {
			return err
		}
	}

	if err := doc.EnsureObject(overlay.KeyProfile, overlay.KeyFields); err != nil {
		return err
	}
	if err := doc.SetString(overlay.NIPCode.Pick(french), overlay.KeyProfile, overlay.KeyFields, overlay.KeyNIPCode); err != nil {
		return err
	}

	return doc.SetString(overlay.ProfileDetails.Pick(french), overlay.KeyProfile, overlay.KeyProfileDetails)
}

func tableObject(table overlay.Table, french bool) (*jsondoc.Document, error) {
	obj := jsondoc.NewObject()
	for _, e := range table {
		if err := obj.SetString(e.Label.Pick(french), e.Key); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
