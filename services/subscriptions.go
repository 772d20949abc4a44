package services

import (
	"github.com/google/uuid"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SubscriptionService manages follower -> author edges.
type SubscriptionService struct {
	db        database.Database
	projector Projector
	logger    zerolog.Logger
}

func NewSubscriptionService(db database.Database) SubscriptionService {
	return SubscriptionService{
		db:        db,
		projector: NewProjector(db),
		logger:    log.With().Str("serviceName", "subscriptionService").Logger(),
	}
}

// Subscribe creates the edge and returns the author's annotated
// profile. Self-subscription and duplicates are rejected before the
// insert; a lost race with a concurrent request still surfaces as a
// conflict through the unique constraint.
func (s SubscriptionService) Subscribe(follower *models.User, authorID uuid.UUID, recipesLimit int) (AuthorView, error) {
	if follower.ID == authorID {
		return AuthorView{}, errs.NewSelfSubscribeError()
	}

	author, err := s.db.UserRepo().FindByID(authorID)
	if err != nil {
		return AuthorView{}, errs.NewDatabaseError("find", "user", err)
	}
	if author == nil {
		return AuthorView{}, errs.NewNotFound("user")
	}

	exists, err := s.db.SubscriptionRepo().Exists(follower.ID, authorID)
	if err != nil {
		return AuthorView{}, errs.NewDatabaseError("check", "subscription", err)
	}
	if exists {
		return AuthorView{}, errs.NewAlreadySubscribedError()
	}

	sub := &models.Subscription{FollowerID: follower.ID, AuthorID: authorID}
	if err := s.db.SubscriptionRepo().Add(sub); err != nil {
		return AuthorView{}, errs.NewDatabaseError("create", "subscription", err)
	}
	s.logger.Info().Str("follower", follower.Username).Str("author", author.Username).Msg("Subscribed")

	return s.projector.AuthorView(follower, author, recipesLimit)
}

// Unsubscribe removes the edge; a missing edge is a not-found error.
func (s SubscriptionService) Unsubscribe(follower *models.User, authorID uuid.UUID) error {
	rows, err := s.db.SubscriptionRepo().Delete(follower.ID, authorID)
	if err != nil {
		return errs.NewDatabaseError("delete", "subscription", err)
	}
	if rows == 0 {
		return errs.NewNotSubscribedError()
	}
	s.logger.Info().Str("follower", follower.Username).Str("authorID", authorID.String()).Msg("Unsubscribed")
	return nil
}

// Subscriptions lists every author the follower is subscribed to, in
// the same annotated-profile shape the subscribe call returns.
func (s SubscriptionService) Subscriptions(follower *models.User, recipesLimit int) ([]AuthorView, error) {
	authors, err := s.db.SubscriptionRepo().AuthorsOf(follower.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "subscriptions", err)
	}

	views := make([]AuthorView, 0, len(authors))
	for _, author := range authors {
		view, err := s.projector.AuthorView(follower, author, recipesLimit)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
