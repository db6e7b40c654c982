package graph

import "github.com/graph-gophers/graphql-go"

// Schema is the GraphQL contract served on /graphql. Release dates cross the
// wire as "YYYY-MM-DD" strings in both directions.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: Int!
		userName: String!
		email: String!
		password: String!
	}

	type Movie {
		id: Int!
		movieName: String!
		description: String!
		directorName: String!
		releaseDate: String!
		createdBy: User!
	}

	type AuthPayload {
		user: User!
		token: String!
	}

	input MovieFilterInput {
		directorName: String
	}

	type Query {
		allMovies: [Movie!]!
		searchMovies(search: String, filter: MovieFilterInput, startIndex: Int, limit: Int): [Movie!]!
		movie(id: Int!): Movie
	}

	type Mutation {
		signUp(userName: String!, email: String!, password: String!): AuthPayload
		login(email: String!, password: String!): AuthPayload
		changePassword(currentPassword: String!, newPassword: String!): User!
		createMovie(
			movieName: String!
			description: String!
			directorName: String!
			releaseDate: String!
		): Movie!
		updateMovie(
			id: Int!
			movieName: String
			description: String
			directorName: String
			releaseDate: String
		): Movie!
		deleteMovie(id: Int!): Movie!
	}
`

func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
