package validators

import (
	"strings"

	"github.com/MKhiriev/go-config-sets/models"
)

// CheckUniqueness reports whether entry, stored under name, would collide
// with another entry of sets on name, serial number, absolute serial number
// or nickname.
//
// self is the name of the entry being edited and is skipped during the
// comparison; pass "" when creating. Empty values never collide, and an
// absolute serial of 0 means "not assigned yet".
func CheckUniqueness(sets models.ConfigSets, name string, entry models.ConfigEntry, self string) error {
	if self == "" {
		if _, ok := sets[name]; ok {
			return ErrNameExists
		}
	}

	serial := strings.TrimSpace(entry.Get(models.FieldSerialNumber))
	nickname := strings.TrimSpace(entry.Get(models.FieldNicknamePath))

	for other, existing := range sets {
		if self != "" && other == self {
			continue
		}
		if serial != "" && strings.TrimSpace(existing.Get(models.FieldSerialNumber)) == serial {
			return ErrSerialNumberExists
		}
		if entry.AbsoluteSerialNumber != 0 && existing.AbsoluteSerialNumber == entry.AbsoluteSerialNumber {
			return ErrAbsoluteSerialExists
		}
		if nickname != "" && strings.TrimSpace(existing.Get(models.FieldNicknamePath)) == nickname {
			return ErrNicknameExists
		}
	}

	return nil
}
