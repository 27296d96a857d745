package domain

type CtxKey string

const (
	KeyUserID      CtxKey = "UserID"
	KeyUserEmail   CtxKey = "Email"
	KeyUserRole    CtxKey = "Role"
	KeyHRID        CtxKey = "HRID"
	KeyCompanyID   CtxKey = "CompanyID"
	KeyPoints      CtxKey = "Points"
	KeyCandidateID CtxKey = "CandidateID"
)
