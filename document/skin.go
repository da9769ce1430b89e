package document

// Skin defines the joint hierarchy and inverse bind matrices used for
// blend-weight skinning.
type Skin struct {
	Name       string
	Extras     any
	Extensions any

	// InverseBindMatrices, when set, is a MAT4 accessor with one
	// matrix per entry of Joints.
	InverseBindMatrices *Accessor
	Skeleton            *Node
	Joints              []*Node
}
