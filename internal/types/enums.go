package types

type CheckStatus string

const (
	CheckStatusOk    CheckStatus = "ok"
	CheckStatusError CheckStatus = "error"
	CheckStatusSkip  CheckStatus = "skip"
)
