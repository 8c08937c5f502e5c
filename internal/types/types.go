package types

// EntityID — дескриптор сущности в арене ECS. Ноль означает «нет сущности».
type EntityID uint32

// NoEntity — пустой дескриптор, используется как «нет родителя».
const NoEntity EntityID = 0
