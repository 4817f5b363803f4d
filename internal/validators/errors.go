package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("config set name is required")
	ErrNameExists           = errors.New("config set name already exists")
	ErrSerialNumberExists   = errors.New("serial number already exists")
	ErrAbsoluteSerialExists = errors.New("absolute serial number already exists")
	ErrNicknameExists       = errors.New("nickname already exists")
	ErrInvalidPathFormat    = errors.New("invalid path format")
	ErrPathNotFound         = errors.New("path does not exist")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")

	ErrInvalidTheme = errors.New("theme must be one of auto, light, dark")
	ErrInvalidPort  = errors.New("port must be between 1 and 65535")
	ErrUnsafePort   = errors.New("port is blocked by browsers")
)
