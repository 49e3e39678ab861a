// model/neo4j/nodes.go
package mobility_neo4j

// Node Labels
const (
	// LabelUser mirrors a user record; id is the document ObjectID hex
	LabelUser = "User"

	// LabelGuardian is a guardian identified by their identity-provider uid
	LabelGuardian = "Guardian"
)
