package graph

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vineetbagga004/Viral-Nation-Assessment/auth"
	"github.com/vineetbagga004/Viral-Nation-Assessment/models"
	"github.com/vineetbagga004/Viral-Nation-Assessment/repositories"
)

const dateLayout = "2006-01-02"

const minPasswordLength = 6

// Resolver is the root resolver for queries and mutations. It holds the
// stores and the token service; the caller identity arrives through the
// request context, set by the auth middleware.
type Resolver struct {
	Users  repositories.UserStore
	Movies repositories.MovieStore
	Tokens *auth.TokenService
}

// Queries

func (r *Resolver) Movie(ctx context.Context, args struct{ ID int32 }) (*movieResolver, error) {
	movie, err := r.Movies.GetByID(ctx, uint(args.ID))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errNotFound("no movie found")
	}
	if err != nil {
		return nil, errInternal("movie", err)
	}
	return &movieResolver{m: *movie}, nil
}

func (r *Resolver) AllMovies(ctx context.Context) ([]*movieResolver, error) {
	movies, err := r.Movies.All(ctx)
	if err != nil {
		return nil, errInternal("allMovies", err)
	}
	return movieResolvers(movies), nil
}

type movieFilterInput struct {
	DirectorName *string
}

func (r *Resolver) SearchMovies(ctx context.Context, args struct {
	Search     *string
	Filter     *movieFilterInput
	StartIndex *int32
	Limit      *int32
}) ([]*movieResolver, error) {
	filter := repositories.MovieFilter{}
	if args.Search != nil {
		filter.Search = *args.Search
	}
	if args.Filter != nil && args.Filter.DirectorName != nil {
		filter.DirectorName = *args.Filter.DirectorName
	}
	if args.StartIndex != nil {
		filter.Offset = int(*args.StartIndex)
	}
	if args.Limit != nil {
		filter.Limit = int(*args.Limit)
	}

	movies, err := r.Movies.Search(ctx, filter)
	if err != nil {
		return nil, errInternal("searchMovies", err)
	}
	return movieResolvers(movies), nil
}

// Mutations

func (r *Resolver) SignUp(ctx context.Context, args struct {
	UserName string
	Email    string
	Password string
}) (*authPayloadResolver, error) {
	if len(args.Password) < minPasswordLength {
		return nil, errValidation("password should have at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(args.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errInternal("signUp", err)
	}

	user := &models.User{
		UserName:     args.UserName,
		Email:        args.Email,
		PasswordHash: string(hash),
	}
	if err := r.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, errConflict("user already exists")
		}
		return nil, errInternal("signUp", err)
	}

	token, err := r.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errInternal("signUp", err)
	}
	return &authPayloadResolver{user: *user, token: token}, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password, so the response does not reveal whether the account exists.
func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authPayloadResolver, error) {
	user, err := r.Users.GetByEmail(ctx, args.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errValidation("invalid email or password")
	}
	if err != nil {
		return nil, errInternal("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(args.Password)); err != nil {
		return nil, errValidation("invalid email or password")
	}

	token, err := r.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errInternal("login", err)
	}
	return &authPayloadResolver{user: *user, token: token}, nil
}

func (r *Resolver) ChangePassword(ctx context.Context, args struct {
	CurrentPassword string
	NewPassword     string
}) (*userResolver, error) {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	user, err := r.Users.GetByID(ctx, identity.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errNotFound("user not found")
	}
	if err != nil {
		return nil, errInternal("changePassword", err)
	}

	if len(args.NewPassword) < minPasswordLength {
		return nil, errValidation("password should have at least 6 characters")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(args.CurrentPassword)); err != nil {
		return nil, errValidation("invalid current password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(args.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errInternal("changePassword", err)
	}

	updated, err := r.Users.UpdatePassword(ctx, identity.UserID, string(hash))
	if err != nil {
		return nil, errInternal("changePassword", err)
	}
	return &userResolver{u: *updated}, nil
}

func (r *Resolver) CreateMovie(ctx context.Context, args struct {
	MovieName    string
	Description  string
	DirectorName string
	ReleaseDate  string
}) (*movieResolver, error) {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	releaseDate, err := parseReleaseDate(args.ReleaseDate)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		MovieName:    args.MovieName,
		Description:  args.Description,
		DirectorName: args.DirectorName,
		ReleaseDate:  releaseDate,
		CreatedByID:  identity.UserID,
	}
	if err := r.Movies.Create(ctx, movie); err != nil {
		return nil, errInternal("createMovie", err)
	}
	return &movieResolver{m: *movie}, nil
}

func (r *Resolver) UpdateMovie(ctx context.Context, args struct {
	ID           int32
	MovieName    *string
	Description  *string
	DirectorName *string
	ReleaseDate  *string
}) (*movieResolver, error) {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	movie, err := r.Movies.GetByID(ctx, uint(args.ID))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errNotFound("movie not found")
	}
	if err != nil {
		return nil, errInternal("updateMovie", err)
	}
	if movie.CreatedByID != identity.UserID {
		return nil, errForbidden()
	}

	if args.MovieName != nil {
		movie.MovieName = *args.MovieName
	}
	if args.Description != nil {
		movie.Description = *args.Description
	}
	if args.DirectorName != nil {
		movie.DirectorName = *args.DirectorName
	}
	if args.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*args.ReleaseDate)
		if err != nil {
			return nil, err
		}
		movie.ReleaseDate = releaseDate
	}

	if err := r.Movies.Update(ctx, movie); err != nil {
		return nil, errInternal("updateMovie", err)
	}
	return &movieResolver{m: *movie}, nil
}

func (r *Resolver) DeleteMovie(ctx context.Context, args struct{ ID int32 }) (*movieResolver, error) {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		return nil, errUnauthenticated()
	}

	movie, err := r.Movies.GetByID(ctx, uint(args.ID))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errNotFound("movie not found")
	}
	if err != nil {
		return nil, errInternal("deleteMovie", err)
	}
	if movie.CreatedByID != identity.UserID {
		return nil, errForbidden()
	}

	deleted, err := r.Movies.Delete(ctx, movie.ID)
	if err != nil {
		return nil, errInternal("deleteMovie", err)
	}
	return &movieResolver{m: *deleted}, nil
}

// parseReleaseDate insists on a real calendar date: "2024-02-30" is rejected,
// not just strings that fail the YYYY-MM-DD pattern.
func parseReleaseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errValidation(`the format of release date should be "YYYY-MM-DD"`)
	}
	return t, nil
}

// Type resolvers

type userResolver struct {
	u models.User
}

func (r *userResolver) ID() int32        { return int32(r.u.ID) }
func (r *userResolver) UserName() string { return r.u.UserName }
func (r *userResolver) Email() string    { return r.u.Email }
func (r *userResolver) Password() string { return r.u.PasswordHash }

type movieResolver struct {
	m models.Movie
}

func (r *movieResolver) ID() int32            { return int32(r.m.ID) }
func (r *movieResolver) MovieName() string    { return r.m.MovieName }
func (r *movieResolver) Description() string  { return r.m.Description }
func (r *movieResolver) DirectorName() string { return r.m.DirectorName }
func (r *movieResolver) ReleaseDate() string  { return r.m.ReleaseDate.Format(dateLayout) }
func (r *movieResolver) CreatedBy() *userResolver {
	return &userResolver{u: r.m.CreatedBy}
}

type authPayloadResolver struct {
	user  models.User
	token string
}

func (r *authPayloadResolver) User() *userResolver { return &userResolver{u: r.user} }
func (r *authPayloadResolver) Token() string       { return r.token }

func movieResolvers(movies []models.Movie) []*movieResolver {
	resolvers := make([]*movieResolver, 0, len(movies))
	for _, m := range movies {
		resolvers = append(resolvers, &movieResolver{m: m})
	}
	return resolvers
}
