package leader

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/types"
)

// peerService answers the cluster-internal RPCs: follower registration
// and liveness probes
type peerService struct {
	proto.UnimplementedLeaderServiceServer
	ldr *Leader
}

// RegisterFollower admits a follower, ships it a full snapshot of the
// replicated tables, and tells the rest of the cluster about it. The
// response lists the other followers in id-address form so the new
// member starts with the full membership view.
func (s *peerService) RegisterFollower(ctx context.Context, req *proto.RegisterFollowerRequest) (*proto.RegisterFollowerResponse, error) {
	p := types.Peer{ID: req.GetFollowerId(), Address: req.GetFollowerAddress()}
	if p.ID == "" || p.Address == "" {
		code := types.StatusInvalidArguments
		return &proto.RegisterFollowerResponse{
			ErrorCode:    int32(code),
			ErrorMessage: code.Message(),
		}, nil
	}

	snap, err := s.ldr.store.Snapshot(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "snapshotting store: %v", err)
	}
	blob, err := codec.EncodeSnapshot(snap)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding snapshot: %v", err)
	}

	others := make([]string, 0)
	var otherPeers []types.Peer
	for _, f := range s.ldr.Followers() {
		if f.ID == p.ID {
			continue
		}
		others = append(others, f.String())
		otherPeers = append(otherPeers, f)
	}

	s.ldr.addFollower(p)
	s.ldr.announceFollower(p, otherPeers)

	metrics.SnapshotsServed.Inc()
	plog := log.WithPeer(p.ID, p.Address)
	plog.Info().
		Int("users", len(snap.Users)).
		Int("messages", len(snap.Messages)).
		Msg("Follower registered")

	return &proto.RegisterFollowerResponse{
		ErrorCode:      int32(types.StatusSuccess),
		ErrorMessage:   types.StatusSuccess.Message(),
		PickledDb:      blob,
		OtherFollowers: others,
	}, nil
}

// HeartBeat answers follower liveness probes
func (s *peerService) HeartBeat(ctx context.Context, _ *proto.Empty) (*proto.Ack, error) {
	return &proto.Ack{
		ErrorCode:    int32(types.StatusSuccess),
		ErrorMessage: types.StatusSuccess.Message(),
	}, nil
}

// CheckLeader confirms this server is alive and acting as leader.
// Followers call it during elections to verify the presumed winner.
func (s *peerService) CheckLeader(ctx context.Context, _ *proto.Empty) (*proto.Ack, error) {
	return &proto.Ack{
		ErrorCode:    int32(types.StatusSuccess),
		ErrorMessage: types.StatusSuccess.Message(),
	}, nil
}
