package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themis-legal/themis-backend/models"
)

func transferEnforcer(userId string, role models.Role) *EnforceSecurityCaseTransferImpl {
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: userId},
		Role:          role,
	}
	return &EnforceSecurityCaseTransferImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func TestRequestTransferOnlyByLawyerOfRecord(t *testing.T) {
	c := models.Case{Id: "case", LawyerId: "lawyer-1", ClientId: "client-1"}

	assert.NoError(t, transferEnforcer("lawyer-1", models.LAWYER).RequestTransfer(c))

	err := transferEnforcer("lawyer-2", models.LAWYER).RequestTransfer(c)
	assert.ErrorIs(t, err, models.ForbiddenError)

	// clients do not hold the transfer permission at all
	err = transferEnforcer("client-1", models.CLIENT).RequestTransfer(c)
	assert.ErrorIs(t, err, models.ForbiddenError)
}

func TestReviewTransferOnlyByTargetOrOverseer(t *testing.T) {
	transfer := models.CaseTransfer{
		Id:         "transfer",
		FromUserId: "lawyer-1",
		ToUserId:   "lawyer-2",
		Status:     models.TransferPending,
	}

	assert.NoError(t, transferEnforcer("lawyer-2", models.LAWYER).ReviewTransfer(transfer))
	assert.NoError(t, transferEnforcer("judge-1", models.JUDGE).ReviewTransfer(transfer))
	assert.NoError(t, transferEnforcer("admin-1", models.ADMIN).ReviewTransfer(transfer))

	err := transferEnforcer("lawyer-1", models.LAWYER).ReviewTransfer(transfer)
	assert.ErrorIs(t, err, models.ForbiddenError)

	err = transferEnforcer("lawyer-3", models.LAWYER).ReviewTransfer(transfer)
	assert.ErrorIs(t, err, models.ForbiddenError)
}

func TestCancelTransferOnlyByRequester(t *testing.T) {
	transfer := models.CaseTransfer{
		Id:         "transfer",
		FromUserId: "lawyer-1",
		ToUserId:   "lawyer-2",
		Status:     models.TransferPending,
	}

	assert.NoError(t, transferEnforcer("lawyer-1", models.LAWYER).CancelTransfer(transfer))

	err := transferEnforcer("lawyer-2", models.LAWYER).CancelTransfer(transfer)
	assert.ErrorIs(t, err, models.ForbiddenError)
}
