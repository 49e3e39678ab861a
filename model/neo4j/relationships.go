// model/neo4j/relationships.go
package mobility_neo4j

// Relationship Types
const (
	// RelGuards points from a guardian to the user they protect
	RelGuards = "GUARDS"
)
