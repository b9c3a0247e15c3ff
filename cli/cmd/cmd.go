package cmd

// Globals are the flags shared by every command. kong binds a pointer to
// them for each command's Run method.
type Globals struct {
	Value *float64 `help:"Number exposed to expressions as 'value'." placeholder:"FLOAT" short:"v"`
}
