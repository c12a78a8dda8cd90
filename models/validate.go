package models

import (
	vrerrors "github.com/reece/vr/errors"
	"github.com/reece/vr/internal/schema"
)

// Validate checks a variation against the bundled schema's constraints:
// required properties, type discriminators, CURIE syntax, interval
// bounds, and sequence syntax. It returns nil or a
// vrerrors.ValidationList.
func Validate(v Variation) error {
	var list vrerrors.ValidationList

	switch m := v.(type) {
	case Allele:
		list = validateAllele(m)
	case Text:
		list = validateText(m)
	default:
		list = vrerrors.ValidationList{
			vrerrors.NewValidationf(vrerrors.ErrUnknownType, "", "unsupported variation type %T", v),
		}
	}

	if len(list) == 0 {
		return nil
	}
	return list
}

func validateAllele(a Allele) vrerrors.ValidationList {
	var list vrerrors.ValidationList

	list = append(list, checkTypeConst(TypeAllele, a.Type, "/type")...)
	list = append(list, checkRequired(TypeAllele, map[string]bool{
		"location": !a.Location.IsZero(),
		"state":    a.State != SequenceState{},
	}, "")...)

	if a.ID != "" && !a.ID.IsValid() {
		list = append(list, curieError("/_id", a.ID))
	}

	if a.Location.IsReference() {
		if !a.Location.CURIE.IsValid() {
			list = append(list, curieError("/location", a.Location.CURIE))
		}
	} else if loc, ok := a.Location.Resolved(); ok {
		list = append(list, validateSequenceLocation(*loc, "/location")...)
	}

	if a.State != (SequenceState{}) {
		list = append(list, validateSequenceState(a.State, "/state")...)
	}

	return list
}

func validateText(t Text) vrerrors.ValidationList {
	var list vrerrors.ValidationList

	list = append(list, checkTypeConst(TypeText, t.Type, "/type")...)
	list = append(list, checkRequired(TypeText, map[string]bool{
		"definition": t.Definition != "",
	}, "")...)

	if t.ID != "" && !t.ID.IsValid() {
		list = append(list, curieError("/_id", t.ID))
	}

	return list
}

func validateSequenceLocation(loc SequenceLocation, path string) vrerrors.ValidationList {
	var list vrerrors.ValidationList

	list = append(list, checkTypeConst(TypeSequenceLocation, loc.Type, path+"/type")...)
	list = append(list, checkRequired(TypeSequenceLocation, map[string]bool{
		"sequence_id": loc.SequenceID != "",
		"interval":    true,
	}, path)...)

	if loc.SequenceID != "" && !loc.SequenceID.IsValid() {
		list = append(list, curieError(path+"/sequence_id", loc.SequenceID))
	}
	if loc.ID != "" && !loc.ID.IsValid() {
		list = append(list, curieError(path+"/_id", loc.ID))
	}

	list = append(list, validateSimpleInterval(loc.Interval, path+"/interval")...)
	return list
}

func validateSimpleInterval(iv SimpleInterval, path string) vrerrors.ValidationList {
	var list vrerrors.ValidationList

	list = append(list, checkTypeConst(TypeSimpleInterval, iv.Type, path+"/type")...)

	if iv.Start < 0 || iv.End < 0 {
		list = append(list, vrerrors.NewValidationf(vrerrors.ErrIntervalBounds, path,
			"coordinates must be non-negative, got [%d, %d)", iv.Start, iv.End))
	} else if iv.End < iv.Start {
		list = append(list, vrerrors.NewValidationf(vrerrors.ErrIntervalBounds, path,
			"interval end %d precedes start %d", iv.End, iv.Start))
	}

	return list
}

func validateSequenceState(st SequenceState, path string) vrerrors.ValidationList {
	var list vrerrors.ValidationList

	list = append(list, checkTypeConst(TypeSequenceState, st.Type, path+"/type")...)

	if !schema.SequencePattern().MatchString(st.Sequence) {
		list = append(list, vrerrors.Validation{
			Code:    string(vrerrors.ErrSequenceSyntax),
			Message: "sequence contains characters outside the residue alphabet",
			Path:    path + "/sequence",
			Actual:  st.Sequence,
		})
	}

	return list
}

// checkRequired walks the schema definition's required list and reports
// every property the instance does not carry.
func checkRequired(defName string, present map[string]bool, path string) vrerrors.ValidationList {
	def, ok := schema.Lookup(defName)
	if !ok {
		return vrerrors.ValidationList{
			vrerrors.NewValidationf(vrerrors.ErrUnknownType, path, "no schema definition for %s", defName),
		}
	}

	var list vrerrors.ValidationList
	for _, prop := range def.Required {
		if !present[prop] {
			list = append(list, vrerrors.NewValidationf(vrerrors.ErrRequiredProperty,
				path+"/"+prop, "%s requires property %s", defName, prop))
		}
	}
	return list
}

// checkTypeConst flags a discriminator that contradicts the schema.
// An empty discriminator is tolerated; constructors always set it.
func checkTypeConst(defName, got, path string) vrerrors.ValidationList {
	def, ok := schema.Lookup(defName)
	if !ok || got == "" || got == def.TypeConst {
		return nil
	}
	return vrerrors.ValidationList{{
		Code:    string(vrerrors.ErrTypeMismatch),
		Message: "type discriminator does not match " + def.TypeConst,
		Path:    path,
		Actual:  got,
	}}
}

func curieError(path string, c CURIE) vrerrors.Validation {
	return vrerrors.Validation{
		Code:    string(vrerrors.ErrCURIESyntax),
		Message: "CURIE must match prefix:reference",
		Path:    path,
		Actual:  string(c),
	}
}
