package follower

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parley-io/parley/api/proto"
	"github.com/parley-io/parley/pkg/codec"
	"github.com/parley-io/parley/pkg/log"
	"github.com/parley-io/parley/pkg/metrics"
	"github.com/parley-io/parley/pkg/storage"
	"github.com/parley-io/parley/pkg/types"
)

// peerService answers the cluster-internal RPCs a follower receives:
// replicated mutations, leadership changes, and membership updates
type peerService struct {
	proto.UnimplementedFollowerServiceServer
	flw *Follower
}

// AcceptUpdates applies one replicated mutation. Replayed inserts are
// acknowledged without change, so a leader retry never corrupts the
// replica. Delivery is at-most-once: an event that cannot be decoded
// or applied is logged and dropped, and the leader still gets a
// success ack so a poisoned event never stalls the stream.
func (s *peerService) AcceptUpdates(ctx context.Context, req *proto.AcceptUpdatesRequest) (*proto.ServerResponse, error) {
	ok := &proto.ServerResponse{
		ErrorCode:    int32(types.StatusSuccess),
		ErrorMessage: types.StatusSuccess.Message(),
	}

	ev, err := codec.DecodeEvent(req.GetUpdateData())
	if err != nil {
		metrics.EventApplyErrors.Inc()
		s.flw.logger.Error().Err(err).Msg("Dropping malformed replication event")
		return ok, nil
	}

	if err := s.apply(ctx, ev); err != nil {
		metrics.EventApplyErrors.Inc()
		s.flw.logger.Error().Err(err).
			Str("table", string(ev.Table)).
			Str("op", string(ev.Op)).
			Msg("Dropping unappliable replication event")
		return ok, nil
	}

	metrics.EventsApplied.WithLabelValues(string(ev.Table), string(ev.Op)).Inc()
	return ok, nil
}

// apply routes a decoded event to the matching row operation
func (s *peerService) apply(ctx context.Context, ev *codec.Event) error {
	st := s.flw.store
	switch ev.Table {
	case types.TableUsers:
		switch ev.Op {
		case types.OpAdd:
			return ignoreReplay(st.InsertUserRow(ctx, ev.User))
		case types.OpUpdate:
			return st.UpdateUserRow(ctx, ev.User)
		case types.OpDelete:
			return st.DeleteUserRow(ctx, ev.User.ID)
		}
	case types.TableMessages:
		switch ev.Op {
		case types.OpAdd:
			return ignoreReplay(st.InsertMessageRow(ctx, ev.Message))
		case types.OpUpdate:
			return st.UpdateMessageRow(ctx, ev.Message)
		case types.OpDelete:
			return st.DeleteMessageRow(ctx, ev.Message.ID)
		}
	case types.TableDeletedMessages:
		if ev.Op == types.OpAdd {
			return ignoreReplay(st.InsertDeletedMessageRow(ctx, ev.Deleted))
		}
		return fmt.Errorf("unsupported op %q on table %q", ev.Op, ev.Table)
	}
	return fmt.Errorf("unsupported op %q on table %q", ev.Op, ev.Table)
}

// ignoreReplay treats a duplicate insert as already applied
func ignoreReplay(err error) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return nil
	}
	return err
}

// UpdateLeader adopts a freshly promoted leader: the winner leaves the
// peer set, becomes the heartbeat target, and the replica rebuilds
// itself from the winner's snapshot
func (s *peerService) UpdateLeader(ctx context.Context, req *proto.NewLeaderRequest) (*proto.Ack, error) {
	f := s.flw
	if req.GetNewLeaderId() == f.id {
		// hearing about our own promotion changes nothing
		return &proto.Ack{
			ErrorCode:    int32(types.StatusSuccess),
			ErrorMessage: types.StatusSuccess.Message(),
		}, nil
	}

	plog := log.WithPeer(req.GetNewLeaderId(), req.GetNewLeaderAddress())
	plog.Info().Msg("Adopting new leader")
	f.removePeer(req.GetNewLeaderId())
	f.setLeader(req.GetNewLeaderAddress())

	if err := f.register(ctx); err != nil {
		return nil, status.Errorf(codes.Internal, "re-registering with new leader: %v", err)
	}
	return &proto.Ack{
		ErrorCode:    int32(types.StatusSuccess),
		ErrorMessage: types.StatusSuccess.Message(),
	}, nil
}

// UpdateFollowers records a newly registered peer announced by the
// leader
func (s *peerService) UpdateFollowers(ctx context.Context, req *proto.UpdateFollowersRequest) (*proto.Ack, error) {
	p, err := codec.DecodePeer(req.GetUpdateData())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decoding peer announcement: %v", err)
	}
	s.flw.addPeer(p)
	plog := log.WithPeer(p.ID, p.Address)
	plog.Info().Msg("Learned about new follower")
	return &proto.Ack{
		ErrorCode:    int32(types.StatusSuccess),
		ErrorMessage: types.StatusSuccess.Message(),
	}, nil
}
