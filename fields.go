package seqbench

//field names used in structured log entries
const (
	//Function Field name of the function writing the entry
	Function = "function"
	//Variant Field name of the sequence variant under measurement
	Variant = "variant"
	//SweepSize Field name of the sequence size N being measured
	SweepSize = "N"
)
