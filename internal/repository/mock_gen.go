// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./volunteer.go -destination=../mocks/mock_volunteer_repository.go -package=mocks VolunteerRepositoryIface
//go:generate mockgen -typed -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -typed -source=./email_claim.go -destination=../mocks/mock_email_claim_repository.go -package=mocks EmailClaimRepositoryIface
//go:generate mockgen -typed -source=./post.go -destination=../mocks/mock_post_repository.go -package=mocks PostRepositoryIface
//go:generate mockgen -typed -source=./request.go -destination=../mocks/mock_request_repository.go -package=mocks RequestRepositoryIface
