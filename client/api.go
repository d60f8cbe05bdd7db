// client/api.go - Endpoint wrappers
package client

import (
	"fmt"
	"net/http"

	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"
)

// TournamentDetail is the single-tournament response shape.
type TournamentDetail struct {
	models.Tournament
	Enrollments []models.Enrollment `json:"enrollments"`
}

// Register creates an account; the server also logs the new user in.
func (c *Client) Register(in *schema.InsertUser) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var user models.User
	if err := c.mutate(http.MethodPost, "/api/register", in, &user, mutRegister, "Account created"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(username, password string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password}
	var user models.User
	if err := c.mutate(http.MethodPost, "/api/login", body, &user, mutLogin, "Welcome back"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout() error {
	return c.mutate(http.MethodPost, "/api/logout", nil, nil, mutLogout, "Logged out")
}

// CurrentUser returns the session's user. Cached until the next
// register/login/logout.
func (c *Client) CurrentUser() (*models.User, error) {
	var user models.User
	if err := c.get("/api/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Birds() ([]models.Bird, error) {
	var birds []models.Bird
	if err := c.get("/api/birds", &birds); err != nil {
		return nil, err
	}
	return birds, nil
}

func (c *Client) CreateBird(in *schema.InsertBird) (*models.Bird, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var bird models.Bird
	if err := c.mutate(http.MethodPost, "/api/birds", in, &bird, mutCreateBird, "Bird registered"); err != nil {
		return nil, err
	}
	return &bird, nil
}

func (c *Client) Bird(id uint) (*models.Bird, error) {
	var bird models.Bird
	if err := c.get(fmt.Sprintf("/api/birds/%d", id), &bird); err != nil {
		return nil, err
	}
	return &bird, nil
}

func (c *Client) UpdateBird(id uint, in *schema.BirdUpdate) (*models.Bird, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var bird models.Bird
	path := fmt.Sprintf("/api/birds/%d", id)
	if err := c.mutate(http.MethodPut, path, in, &bird, mutUpdateBird, "Bird updated"); err != nil {
		return nil, err
	}
	return &bird, nil
}

func (c *Client) DeleteBird(id uint) error {
	path := fmt.Sprintf("/api/birds/%d", id)
	return c.mutate(http.MethodDelete, path, nil, nil, mutDeleteBird, "Bird removed")
}

func (c *Client) Trainings(birdID uint) ([]models.Training, error) {
	var trainings []models.Training
	if err := c.get(fmt.Sprintf("/api/birds/%d/trainings", birdID), &trainings); err != nil {
		return nil, err
	}
	return trainings, nil
}

func (c *Client) CreateTraining(in *schema.InsertTraining) (*models.Training, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var training models.Training
	if err := c.mutate(http.MethodPost, "/api/trainings", in, &training, mutCreateTraining, "Training saved"); err != nil {
		return nil, err
	}
	return &training, nil
}

func (c *Client) Tournaments() ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := c.get("/api/tournaments", &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

// CreateTournament sends the insert shape; the date travels as an RFC 3339
// string via its JSON encoding.
func (c *Client) CreateTournament(in *schema.InsertTournament) (*models.Tournament, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var tournament models.Tournament
	if err := c.mutate(http.MethodPost, "/api/tournaments", in, &tournament, mutCreateTournament, "Tournament created"); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) Tournament(id uint) (*TournamentDetail, error) {
	var detail TournamentDetail
	if err := c.get(fmt.Sprintf("/api/tournaments/%d", id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) Enroll(tournamentID, birdID uint) (*models.Enrollment, error) {
	body := schema.EnrollRequest{BirdID: birdID}
	var enrollment models.Enrollment
	path := fmt.Sprintf("/api/tournaments/%d/enroll", tournamentID)
	if err := c.mutate(http.MethodPost, path, &body, &enrollment, mutEnroll, "Bird enrolled"); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (c *Client) SubmitResults(tournamentID uint, entries []schema.ResultEntry) error {
	if err := schema.ValidateResults(entries); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/tournaments/%d/results", tournamentID)
	return c.mutate(http.MethodPost, path, entries, nil, mutSubmitResults, "Results recorded")
}

func (c *Client) Rankings() ([]models.RankingEntry, error) {
	var rankings []models.RankingEntry
	if err := c.get("/api/rankings", &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}
