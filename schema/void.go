package schema

// Void is the unit value: used as the element type of an empty sequence or
// map, and as the payload type of a unit sum variant.
type Void struct{}
