package plugin

import "github.com/openucx/collscore/score"

// CudaIPCProvider registers device-memory algorithms restricted to CUDA
// and CUDA-managed buffers, at a lower default score than HostProvider to
// reflect that GPU-direct collectives are newer and less broadly
// validated than their host-memory counterparts — a real selection
// decision a transport author would encode the same way via
// BuildDefault's default_score argument.
type CudaIPCProvider struct {
	Score score.Score
}

func (p CudaIPCProvider) Name() string { return "ucp_cuda_ipc" }

func (p CudaIPCProvider) Build(team score.TeamRef) (*score.ScoreMap, error) {
	sc := p.Score
	if sc == score.ScoreDisabled {
		sc = 5
	}
	return score.BuildDefault(team, sc, algoInit("cuda_ipc_ring"), score.ColTypeAll,
		[]score.MemType{score.MemCuda, score.MemCudaManaged})
}
