package selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда staged-активность не найдена
	ErrSelectionNotFound = errors.New("selection.repository: selection not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("selection.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("selection.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("selection.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации JSON-колонок
	ErrEncode = errors.New("selection.repository: failed to encode selection")

	// ErrDecode возвращается при ошибке десериализации JSON-колонок
	ErrDecode = errors.New("selection.repository: failed to decode selection")
)
