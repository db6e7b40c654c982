package graph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vineetbagga004/Viral-Nation-Assessment/auth"
	"github.com/vineetbagga004/Viral-Nation-Assessment/repositories"
)

func newTestResolver() *Resolver {
	users := repositories.NewInMemoryUserStore()
	return &Resolver{
		Users:  users,
		Movies: repositories.NewInMemoryMovieStore(users),
		Tokens: auth.NewTokenService("test-secret", time.Hour),
	}
}

func signUp(t *testing.T, r *Resolver, userName, email, password string) *authPayloadResolver {
	t.Helper()
	payload, err := r.SignUp(context.Background(), struct {
		UserName string
		Email    string
		Password string
	}{userName, email, password})
	require.NoError(t, err)
	return payload
}

func authedCtx(payload *authPayloadResolver) context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{
		UserID: payload.user.ID,
		Email:  payload.user.Email,
	})
}

func createMovie(t *testing.T, r *Resolver, ctx context.Context, name, description, director, releaseDate string) *movieResolver {
	t.Helper()
	movie, err := r.CreateMovie(ctx, struct {
		MovieName    string
		Description  string
		DirectorName string
		ReleaseDate  string
	}{name, description, director, releaseDate})
	require.NoError(t, err)
	return movie
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	reqErr, ok := err.(*requestError)
	require.True(t, ok, "expected a request error, got %T: %v", err, err)
	return reqErr.code
}

func strPtr(s string) *string { return &s }

func TestSignUpThenLogin(t *testing.T) {
	r := newTestResolver()

	payload := signUp(t, r, "alice", "alice@example.com", "password1")
	assert.Equal(t, "alice", payload.user.UserName)

	id, ok := r.Tokens.Verify(payload.token)
	require.True(t, ok)
	assert.Equal(t, payload.user.ID, id.UserID)

	login, err := r.Login(context.Background(), struct {
		Email    string
		Password string
	}{"alice@example.com", "password1"})
	require.NoError(t, err)

	loginID, ok := r.Tokens.Verify(login.token)
	require.True(t, ok)
	assert.Equal(t, payload.user.ID, loginID.UserID)
}

func TestSignUp_ShortPassword(t *testing.T) {
	r := newTestResolver()

	_, err := r.SignUp(context.Background(), struct {
		UserName string
		Email    string
		Password string
	}{"alice", "alice@example.com", "short"})
	assert.Equal(t, codeBadUserInput, errCode(t, err))

	// No record was created.
	_, err = r.Users.GetByEmail(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	r := newTestResolver()
	signUp(t, r, "alice", "alice@example.com", "password1")

	_, err := r.SignUp(context.Background(), struct {
		UserName string
		Email    string
		Password string
	}{"impostor", "alice@example.com", "password2"})
	assert.Equal(t, codeConflict, errCode(t, err))
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	r := newTestResolver()
	signUp(t, r, "alice", "alice@example.com", "password1")

	_, unknownErr := r.Login(context.Background(), struct {
		Email    string
		Password string
	}{"nobody@example.com", "password1"})
	_, wrongErr := r.Login(context.Background(), struct {
		Email    string
		Password string
	}{"alice@example.com", "wrong-password"})

	assert.Equal(t, codeBadUserInput, errCode(t, unknownErr))
	assert.Equal(t, codeBadUserInput, errCode(t, wrongErr))
	// Identical message either way, so the response does not reveal
	// whether the account exists.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestChangePassword(t *testing.T) {
	r := newTestResolver()
	payload := signUp(t, r, "alice", "alice@example.com", "password1")

	type args = struct {
		CurrentPassword string
		NewPassword     string
	}

	_, err := r.ChangePassword(context.Background(), args{"password1", "password2"})
	assert.Equal(t, codeUnauthenticated, errCode(t, err))

	_, err = r.ChangePassword(authedCtx(payload), args{"password1", "tiny"})
	assert.Equal(t, codeBadUserInput, errCode(t, err))

	_, err = r.ChangePassword(authedCtx(payload), args{"wrong-current", "password2"})
	assert.Equal(t, codeBadUserInput, errCode(t, err))

	// The stored hash is unchanged after the failures.
	_, err = r.Login(context.Background(), struct {
		Email    string
		Password string
	}{"alice@example.com", "password1"})
	require.NoError(t, err)

	updated, err := r.ChangePassword(authedCtx(payload), args{"password1", "password2"})
	require.NoError(t, err)
	assert.Equal(t, payload.user.ID, updated.u.ID)

	_, err = r.Login(context.Background(), struct {
		Email    string
		Password string
	}{"alice@example.com", "password2"})
	assert.NoError(t, err)
}

func TestCreateMovie(t *testing.T) {
	r := newTestResolver()
	payload := signUp(t, r, "alice", "alice@example.com", "password1")

	type args = struct {
		MovieName    string
		Description  string
		DirectorName string
		ReleaseDate  string
	}

	_, err := r.CreateMovie(context.Background(), args{"Dunkirk", "WWII", "Christopher Nolan", "2017-07-21"})
	assert.Equal(t, codeUnauthenticated, errCode(t, err))

	_, err = r.CreateMovie(authedCtx(payload), args{"Dunkirk", "WWII", "Christopher Nolan", "21-07-2017"})
	assert.Equal(t, codeBadUserInput, errCode(t, err))

	// Matches the pattern but is not a real calendar date.
	_, err = r.CreateMovie(authedCtx(payload), args{"Dunkirk", "WWII", "Christopher Nolan", "2024-02-30"})
	assert.Equal(t, codeBadUserInput, errCode(t, err))

	movie := createMovie(t, r, authedCtx(payload), "Dunkirk", "WWII", "Christopher Nolan", "2017-07-21")
	assert.Equal(t, "2017-07-21", movie.ReleaseDate())
	assert.Equal(t, payload.user.ID, movie.m.CreatedByID)
	assert.Equal(t, "alice@example.com", movie.CreatedBy().Email())
}

func TestUpdateMovie(t *testing.T) {
	r := newTestResolver()
	alice := signUp(t, r, "alice", "alice@example.com", "password1")
	bob := signUp(t, r, "bob", "bob@example.com", "password1")

	movie := createMovie(t, r, authedCtx(alice), "Dunkirk", "WWII", "Christopher Nolan", "2017-07-21")

	type args = struct {
		ID           int32
		MovieName    *string
		Description  *string
		DirectorName *string
		ReleaseDate  *string
	}

	_, err := r.UpdateMovie(context.Background(), args{ID: movie.ID()})
	assert.Equal(t, codeUnauthenticated, errCode(t, err))

	_, err = r.UpdateMovie(authedCtx(alice), args{ID: 999})
	assert.Equal(t, codeNotFound, errCode(t, err))

	_, err = r.UpdateMovie(authedCtx(bob), args{ID: movie.ID(), MovieName: strPtr("Hijacked")})
	assert.Equal(t, codeForbidden, errCode(t, err))

	// The record is unchanged after the forbidden attempt.
	unchanged, getErr := r.Movies.GetByID(context.Background(), movie.m.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Dunkirk", unchanged.MovieName)

	updated, err := r.UpdateMovie(authedCtx(alice), args{
		ID:          movie.ID(),
		Description: strPtr("The Dunkirk evacuation"),
		ReleaseDate: strPtr("2017-07-19"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dunkirk", updated.MovieName(), "untouched fields are preserved")
	assert.Equal(t, "The Dunkirk evacuation", updated.Description())
	assert.Equal(t, "2017-07-19", updated.ReleaseDate())

	_, err = r.UpdateMovie(authedCtx(alice), args{ID: movie.ID(), ReleaseDate: strPtr("not-a-date")})
	assert.Equal(t, codeBadUserInput, errCode(t, err))
}

func TestDeleteMovie(t *testing.T) {
	r := newTestResolver()
	alice := signUp(t, r, "alice", "alice@example.com", "password1")
	bob := signUp(t, r, "bob", "bob@example.com", "password1")

	movie := createMovie(t, r, authedCtx(alice), "Dunkirk", "WWII", "Christopher Nolan", "2017-07-21")

	type args = struct{ ID int32 }

	_, err := r.DeleteMovie(context.Background(), args{movie.ID()})
	assert.Equal(t, codeUnauthenticated, errCode(t, err))

	_, err = r.DeleteMovie(authedCtx(bob), args{movie.ID()})
	assert.Equal(t, codeForbidden, errCode(t, err))

	_, getErr := r.Movies.GetByID(context.Background(), movie.m.ID)
	require.NoError(t, getErr, "movie survives a forbidden delete")

	deleted, err := r.DeleteMovie(authedCtx(alice), args{movie.ID()})
	require.NoError(t, err)
	assert.Equal(t, "2017-07-21", deleted.ReleaseDate())

	_, err = r.DeleteMovie(authedCtx(alice), args{movie.ID()})
	assert.Equal(t, codeNotFound, errCode(t, err))
}

func TestMovieQuery_NotFound(t *testing.T) {
	r := newTestResolver()

	_, err := r.Movie(context.Background(), struct{ ID int32 }{1})
	assert.Equal(t, codeNotFound, errCode(t, err))
}

func TestSearchMovies(t *testing.T) {
	r := newTestResolver()
	payload := signUp(t, r, "alice", "alice@example.com", "password1")
	ctx := authedCtx(payload)

	createMovie(t, r, ctx, "The Dark Knight", "Batman faces the Joker", "Christopher Nolan", "2008-07-18")
	createMovie(t, r, ctx, "Interstellar", "A journey through a wormhole", "Christopher Nolan", "2014-11-07")
	createMovie(t, r, ctx, "Dark Waters", "A legal thriller", "Todd Haynes", "2019-11-22")

	type args = struct {
		Search     *string
		Filter     *movieFilterInput
		StartIndex *int32
		Limit      *int32
	}

	// OR group on name/description/director, AND-ed with the director filter.
	results, err := r.SearchMovies(ctx, args{
		Search: strPtr("dark"),
		Filter: &movieFilterInput{DirectorName: strPtr("nolan")},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Dark Knight", results[0].MovieName())

	// Search alone matches across all three fields, case-insensitively.
	results, err = r.SearchMovies(ctx, args{Search: strPtr("NOLAN")})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Pagination.
	one := int32(1)
	results, err = r.SearchMovies(ctx, args{StartIndex: &one, Limit: &one})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Interstellar", results[0].MovieName())

	// No match is an empty sequence, not an error.
	results, err = r.SearchMovies(ctx, args{Search: strPtr("no such movie")})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAllMovies(t *testing.T) {
	r := newTestResolver()
	payload := signUp(t, r, "alice", "alice@example.com", "password1")

	createMovie(t, r, authedCtx(payload), "Dunkirk", "WWII", "Christopher Nolan", "2017-07-21")
	createMovie(t, r, authedCtx(payload), "Tenet", "Time inversion", "Christopher Nolan", "2020-08-26")

	results, err := r.AllMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2017-07-21", results[0].ReleaseDate())
	assert.Equal(t, "alice", results[0].CreatedBy().UserName())
}
