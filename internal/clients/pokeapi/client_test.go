package pokeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dexboard/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/evolution"
	"github.com/KirkDiggler/dexboard/internal/pkg/clock"
	"github.com/KirkDiggler/dexboard/internal/repositories/apicache"
	"github.com/KirkDiggler/dexboard/internal/testutils"
)

const bulbasaurJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "base_experience": 64,
  "height": 7,
  "weight": 69,
  "types": [
    {"slot": 2, "type": {"name": "poison", "url": ""}},
    {"slot": 1, "type": {"name": "grass", "url": ""}}
  ],
  "stats": [
    {"base_stat": 45, "stat": {"name": "hp"}},
    {"base_stat": 49, "stat": {"name": "attack"}},
    {"base_stat": 49, "stat": {"name": "defense"}},
    {"base_stat": 65, "stat": {"name": "special-attack"}},
    {"base_stat": 65, "stat": {"name": "special-defense"}},
    {"base_stat": 45, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"slot": 1, "is_hidden": false, "ability": {"name": "overgrow"}},
    {"slot": 3, "is_hidden": true, "ability": {"name": "chlorophyll"}}
  ],
  "sprites": {
    "front_default": "https://img.example/1.png",
    "other": {"official-artwork": {"front_default": "https://img.example/art/1.png"}}
  }
}`

const bulbasaurSpeciesJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "gender_rate": 1,
  "capture_rate": 45,
  "is_legendary": false,
  "base_happiness": 50,
  "hatch_counter": 20,
  "egg_groups": [{"name": "monster"}, {"name": "plant"}],
  "evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/1/"}
}`

const eeveeChainJSON = `{
  "id": 67,
  "chain": {
    "species": {"name": "eevee"},
    "evolves_to": [
      {"species": {"name": "vaporeon"}, "evolves_to": []},
      {"species": {"name": "jolteon"}, "evolves_to": []},
      {"species": {"name": "flareon"}, "evolves_to": []}
    ]
  }
}`

type ClientTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	requests atomic.Int32
	status   atomic.Int32
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests.Store(0)
	s.status.Store(http.StatusOK)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon/1/", s.serve(bulbasaurJSON))
	mux.HandleFunc("/api/v2/pokemon-species/1/", s.serve(bulbasaurSpeciesJSON))
	mux.HandleFunc("/api/v2/evolution-chain/67/", s.serve(eeveeChainJSON))
	mux.HandleFunc("/api/v2/pokemon/2/", s.serve(`{not json`))
	s.server = httptest.NewServer(mux)
	s.T().Cleanup(s.server.Close)
}

func (s *ClientTestSuite) serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.requests.Add(1)
		if status := int(s.status.Load()); status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) newClient(cache apicache.Repository) pokeapi.Client {
	c, err := pokeapi.New(&pokeapi.Config{
		BaseURL:           s.server.URL + "/api/v2",
		RequestsPerSecond: 1000,
		HTTPTimeout:       5 * time.Second,
		Cache:             cache,
	})
	s.Require().NoError(err)
	return c
}

func (s *ClientTestSuite) TestGetPokemon() {
	p, err := s.newClient(nil).GetPokemon(s.ctx, 1)
	s.Require().NoError(err)

	s.Assert().Equal("bulbasaur", p.Name)
	s.Require().NotNil(p.BaseExperience)
	s.Assert().Equal(64, *p.BaseExperience)
	s.Assert().Equal([]string{"grass", "poison"}, p.TypeNames())
	s.Assert().Equal([]string{"overgrow", "chlorophyll"}, p.AbilityNames())
	s.Assert().Equal(65, p.StatMap()["special-attack"])
	s.Assert().Equal("https://img.example/art/1.png", p.ArtworkURL())
}

func (s *ClientTestSuite) TestGetSpecies() {
	sp, err := s.newClient(nil).GetSpecies(s.ctx, 1)
	s.Require().NoError(err)

	s.Assert().Equal(1, sp.GenderRate)
	s.Assert().Equal(45, sp.CaptureRate)
	s.Require().NotNil(sp.BaseHappiness)
	s.Assert().Equal(50, *sp.BaseHappiness)
	s.Assert().Equal([]string{"monster", "plant"}, sp.EggGroupNames())

	id, err := evolution.ChainIDFromURL(sp.ChainURL())
	s.Require().NoError(err)
	s.Assert().Equal(1, id)
}

func (s *ClientTestSuite) TestGetEvolutionChain() {
	chain, err := s.newClient(nil).GetEvolutionChain(s.ctx, 67)
	s.Require().NoError(err)

	stages := evolution.Stages(chain.Chain.Link())
	s.Assert().Equal(map[string]int{"eevee": 1, "vaporeon": 2, "jolteon": 2, "flareon": 2}, stages)
}

func (s *ClientTestSuite) TestNotFound() {
	_, err := s.newClient(nil).GetPokemon(s.ctx, 999)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestServerErrorIsUnavailable() {
	s.status.Store(http.StatusBadGateway)

	_, err := s.newClient(nil).GetPokemon(s.ctx, 1)

	s.Assert().True(errors.IsUnavailable(err))
	s.Assert().Equal(http.StatusBadGateway, errors.GetMeta(err)["status"])
}

func (s *ClientTestSuite) TestMalformedBody() {
	_, err := s.newClient(nil).GetPokemon(s.ctx, 2)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestInvalidID() {
	_, err := s.newClient(nil).GetSpecies(s.ctx, 0)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Zero(s.requests.Load())
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newClient(nil).GetPokemon(ctx, 1)
	s.Assert().Error(err)
}

func (s *ClientTestSuite) TestCachedResponsesSkipTheNetwork() {
	redisClient, _ := testutils.CreateTestRedisClient(s.T())
	cache, err := apicache.NewRedisRepository(&apicache.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	s.Require().NoError(err)

	first := s.newClient(cache)
	_, err = first.GetPokemon(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal(int32(1), s.requests.Load())

	second := s.newClient(cache)
	p, err := second.GetPokemon(s.ctx, 1)
	s.Require().NoError(err)

	s.Assert().Equal("bulbasaur", p.Name)
	s.Assert().Equal(int32(1), s.requests.Load())
}

func (s *ClientTestSuite) TestConfigValidation() {
	_, err := pokeapi.New(&pokeapi.Config{BaseURL: "not a url"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = pokeapi.New(&pokeapi.Config{RequestsPerSecond: -1})
	s.Assert().True(errors.IsInvalidArgument(err))
}
