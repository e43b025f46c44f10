// internal/types/types.go
package types

// EntityID — идентификатор сущности. Выдаётся монотонно и никогда не
// переиспользуется, поэтому устаревший ID просто не найдётся в хранилище.
type EntityID uint64

// NoEntity — нулевой ID, не принадлежит ни одной сущности.
const NoEntity EntityID = 0
