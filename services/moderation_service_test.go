package services

import (
	"testing"

	"neighborhood-stories/config"
	"neighborhood-stories/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminPassword = "open-sesame"

func newModerationFixture(t *testing.T) (*fakeStoryRepo, ModerationService, uint) {
	t.Helper()

	repo := newFakeStoryRepo()
	verifier := NewAuthService(config.AdminConfig{Password: testAdminPassword})
	svc := NewModerationService(repo, newFakeInterestRepo(), verifier)

	story, err := NewStoryService(repo).Submit(validSubmission())
	require.NoError(t, err)

	return repo, svc, story.ID
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestApprovePendingStory(t *testing.T) {
	repo, svc, id := newModerationFixture(t)

	story, err := svc.Approve(testAdminPassword, id)
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, story.Status)
	require.NotNil(t, story.ApprovedAt)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
}

func TestApproveIsOnlyLegalFromPending(t *testing.T) {
	for _, from := range []models.StoryStatus{
		models.StatusApproved,
		models.StatusRejected,
		models.StatusArchived,
	} {
		t.Run(string(from), func(t *testing.T) {
			repo, svc, id := newModerationFixture(t)

			rows, err := repo.TransitionStatus(id, models.StatusPending, from)
			require.NoError(t, err)
			require.EqualValues(t, 1, rows)

			_, err = svc.Approve(testAdminPassword, id)
			require.Error(t, err)
			assert.IsType(t, models.ErrorInvalidTransition{}, err)
			assert.Contains(t, err.Error(), string(from))
			assert.Contains(t, err.Error(), "approve")
		})
	}
}

func TestPendingCannotBeArchivedDirectly(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	_, err := svc.Archive(testAdminPassword, id)
	require.Error(t, err)
	assert.IsType(t, models.ErrorInvalidTransition{}, err)
}

func TestFullModerationLifecycle(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	story, err := svc.Approve(testAdminPassword, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, story.Status)
	require.NotNil(t, story.ApprovedAt)
	firstApproval := *story.ApprovedAt

	story, err = svc.Archive(testAdminPassword, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, story.Status)

	story, err = svc.Reopen(testAdminPassword, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, story.Status)

	// Archive and reopen never clear the first approval timestamp, and a
	// second approval keeps it.
	require.NotNil(t, story.ApprovedAt)
	assert.Equal(t, firstApproval, *story.ApprovedAt)

	story, err = svc.Approve(testAdminPassword, id)
	require.NoError(t, err)
	require.NotNil(t, story.ApprovedAt)
	assert.Equal(t, firstApproval, *story.ApprovedAt)
}

func TestRejectAndReopen(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	story, err := svc.Reject(testAdminPassword, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, story.Status)
	assert.Nil(t, story.ApprovedAt)

	story, err = svc.Reopen(testAdminPassword, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, story.Status)
}

func TestUpdateStatusDispatchesByTarget(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	story, err := svc.UpdateStatus(testAdminPassword, id, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, story.Status)

	story, err = svc.UpdateStatus(testAdminPassword, id, models.StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, story.Status)

	story, err = svc.UpdateStatus(testAdminPassword, id, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, story.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	_, err := svc.UpdateStatus(testAdminPassword, id, models.StoryStatus("published"))
	require.Error(t, err)
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestModerationRequiresCredential(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	_, err := svc.Approve("wrong-password", id)
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = svc.ListAll("")
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestModerationMissingStory(t *testing.T) {
	_, svc, _ := newModerationFixture(t)

	_, err := svc.Approve(testAdminPassword, 4242)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestLostTransitionRaceSurfacesAsInvalidTransition(t *testing.T) {
	// Simulate the guard failing because another moderator moved the story
	// between our read and our conditional update.
	repo, _, id := newModerationFixture(t)

	rows, err := repo.TransitionStatus(id, models.StatusPending, models.StatusRejected)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = repo.TransitionStatus(id, models.StatusPending, models.StatusApproved)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)
	assert.Nil(t, stored.ApprovedAt)
}

func TestUpdateStoryPatchesContentFields(t *testing.T) {
	repo, svc, id := newModerationFixture(t)

	story, err := svc.UpdateStory(testAdminPassword, id, models.UpdateStoryRequest{
		Title:               strPtr("  Garden, revisited  "),
		Neighborhood:        strPtr("Riverside"),
		TranslatorAvailable: boolPtr(true),
		TranslatorLanguage:  strPtr("Spanish"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Garden, revisited", story.Title)
	assert.Equal(t, "Riverside", story.Neighborhood)
	assert.True(t, story.TranslatorAvailable)
	assert.Equal(t, "Spanish", story.TranslatorLanguage)

	// Untouched fields and the lifecycle fields survive the patch.
	assert.Equal(t, "Maria S.", story.Author)
	assert.Equal(t, models.StatusPending, story.Status)
	assert.Nil(t, story.ApprovedAt)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Garden, revisited", stored.Title)
}

func TestUpdateStoryEnforcesSubmissionInvariants(t *testing.T) {
	cases := []struct {
		name  string
		patch models.UpdateStoryRequest
	}{
		{"blank title", models.UpdateStoryRequest{Title: strPtr("  ")}},
		{"blank content", models.UpdateStoryRequest{Content: strPtr("")}},
		{"blank language", models.UpdateStoryRequest{Language: strPtr("")}},
		{"blank author", models.UpdateStoryRequest{Author: strPtr("")}},
		{"translator without language", models.UpdateStoryRequest{TranslatorAvailable: boolPtr(true)}},
		{"translator language equals story language", models.UpdateStoryRequest{
			TranslatorAvailable: boolPtr(true),
			TranslatorLanguage:  strPtr("english"),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc, id := newModerationFixture(t)

			_, err := svc.UpdateStory(testAdminPassword, id, tc.patch)
			require.Error(t, err)
			assert.IsType(t, models.ErrorValidation{}, err)

			// A rejected patch leaves the record as it was.
			stored, err := repo.GetByID(id)
			require.NoError(t, err)
			assert.Equal(t, "Garden", stored.Title)
		})
	}
}

func TestUpdateStoryRequiresCredentialAndExistence(t *testing.T) {
	_, svc, id := newModerationFixture(t)

	_, err := svc.UpdateStory("wrong-password", id, models.UpdateStoryRequest{})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = svc.UpdateStory(testAdminPassword, 4242, models.UpdateStoryRequest{})
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestListInterestsReturnsSignupsForStory(t *testing.T) {
	storyRepo := newFakeStoryRepo()
	interestRepo := newFakeInterestRepo()
	verifier := NewAuthService(config.AdminConfig{Password: testAdminPassword})
	svc := NewModerationService(storyRepo, interestRepo, verifier)
	interestSvc := NewInterestService(storyRepo, interestRepo, DefaultMeetupThreshold)

	story, err := NewStoryService(storyRepo).Submit(validSubmission())
	require.NoError(t, err)
	_, err = svc.Approve(testAdminPassword, story.ID)
	require.NoError(t, err)

	_, err = interestSvc.ExpressInterest(story.ID, models.ContactInfo{Name: "Sam K.", Email: "sam@example.com"})
	require.NoError(t, err)
	_, err = interestSvc.ExpressInterest(story.ID, models.ContactInfo{Name: "Lee", Phone: "+1 555 010 99887"})
	require.NoError(t, err)

	interests, err := svc.ListInterests(testAdminPassword, story.ID)
	require.NoError(t, err)
	require.Len(t, interests, 2)
	assert.Equal(t, "sam@example.com", interests[0].Email)
	assert.Equal(t, "+1 555 010 99887", interests[1].Phone)

	_, err = svc.ListInterests("wrong-password", story.ID)
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = svc.ListInterests(testAdminPassword, 4242)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestListAllReturnsEveryStatus(t *testing.T) {
	repo := newFakeStoryRepo()
	verifier := NewAuthService(config.AdminConfig{Password: testAdminPassword})
	svc := NewModerationService(repo, newFakeInterestRepo(), verifier)
	storySvc := NewStoryService(repo)

	a, err := storySvc.Submit(validSubmission())
	require.NoError(t, err)
	_, err = storySvc.Submit(validSubmission())
	require.NoError(t, err)

	_, err = svc.Approve(testAdminPassword, a.ID)
	require.NoError(t, err)

	stories, err := svc.ListAll(testAdminPassword)
	require.NoError(t, err)
	assert.Len(t, stories, 2)
}
