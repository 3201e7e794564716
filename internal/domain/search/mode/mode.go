package mode

// Mode is the text matching strategy.
type Mode string

// Search mode constants.
const (
	// Substring keeps records containing the query and preserves their order.
	Substring Mode = "substring"
	// Ranked scores records against the query and sorts by relevance.
	Ranked Mode = "ranked"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Substring || m == Ranked
}
