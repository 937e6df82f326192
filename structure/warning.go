package structure

// WarningKind is the closed set of non-fatal conditions the structural
// analyzer can raise. Only UnpairedGateway exists today: every other
// error kind in this system's taxonomy is fatal and returned as an error,
// never a Warning.
type WarningKind string

// UnpairedGateway marks a converging inclusive or parallel gateway the
// analyzer could not pair with a diverging partner (or a diverging
// gateway whose branches never converge cleanly). An unpaired converging
// inclusive gateway gets the generic per-gateway action instead of the
// optimized converge action; the other warned gateways are encoded as
// usual. The run still succeeds.
const UnpairedGateway WarningKind = "UnpairedGateway"

// Warning is local-recovery diagnostic surfaced to the caller instead of
// aborting the run.
type Warning struct {
	Kind      WarningKind
	GatewayID string
	Message   string
}
