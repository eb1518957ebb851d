package draft

import (
	"encoding/json"
	"fmt"

	courseModels "lmsadmin/models/course"
)

// UpdateField merges one top-level field into the draft. A "modules" update
// goes through setModules so the derived aggregates are recomputed in the
// same step. Unknown fields and payloads of the wrong shape are rejected
// without touching the draft.
func UpdateField(d *courseModels.CourseDraft, field string, value json.RawMessage) error {
	switch field {
	case "title":
		return into(value, &d.Title)
	case "shortDescription":
		return into(value, &d.ShortDescription)
	case "longDescription":
		return into(value, &d.LongDescription)
	case "price":
		return into(value, &d.Price)
	case "promotionalPrice":
		return into(value, &d.PromotionalPrice)
	case "level":
		return into(value, &d.Level)
	case "language":
		return into(value, &d.Language)
	case "enrollmentDeadline":
		return into(value, &d.EnrollmentDeadline)
	case "published":
		return into(value, &d.Published)
	case "accessType":
		return into(value, &d.AccessType)
	case "certificateIncluded":
		return into(value, &d.CertificateIncluded)
	case "category":
		return into(value, &d.Category)
	case "instructor":
		return into(value, &d.Instructor)
	case "tags":
		return into(value, &d.Tags)
	case "whatYoullLearn":
		return into(value, &d.WhatYoullLearn)
	case "prerequisites":
		return into(value, &d.Prerequisites)
	case "subtitles":
		return into(value, &d.Subtitles)
	case "modules":
		var modules []courseModels.Module
		if err := json.Unmarshal(value, &modules); err != nil {
			return fmt.Errorf("decode modules: %w", err)
		}
		setModules(d, modules)
		return nil
	}
	return fmt.Errorf("unknown draft field %q", field)
}

func into(raw json.RawMessage, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode field value: %w", err)
	}
	return nil
}
