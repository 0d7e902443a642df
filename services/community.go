package services

import (
	goContext "context"

	"github.com/alphabatem/common/context"

	"github.com/pathwise-app/pathwise_client/dto"
)

// CommunityService wraps the posts/replies/likes endpoints.
type CommunityService struct {
	context.DefaultService

	apiSvc *ApiClientService
}

const COMMUNITY_SVC = "community_svc"

func (svc CommunityService) Id() string {
	return COMMUNITY_SVC
}

func (svc *CommunityService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	return nil
}

func (svc *CommunityService) Posts(ctx goContext.Context) (*dto.PostListResponse, error) {
	var posts dto.PostListResponse
	if err := svc.apiSvc.Get(ctx, "/api/community/posts", &posts); err != nil {
		return nil, err
	}
	return &posts, nil
}

func (svc *CommunityService) CreatePost(ctx goContext.Context, content string) (*dto.Post, error) {
	req := dto.CreatePostRequest{Content: content}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var post dto.Post
	if err := svc.apiSvc.Post(ctx, "/api/community/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (svc *CommunityService) LikePost(ctx goContext.Context, postID string) (*dto.LikeResponse, error) {
	var like dto.LikeResponse
	if err := svc.apiSvc.Post(ctx, "/api/community/posts/"+postID+"/like", nil, &like); err != nil {
		return nil, err
	}
	return &like, nil
}

func (svc *CommunityService) Replies(ctx goContext.Context, postID string) (*dto.ReplyListResponse, error) {
	var replies dto.ReplyListResponse
	if err := svc.apiSvc.Get(ctx, "/api/community/posts/"+postID+"/replies", &replies); err != nil {
		return nil, err
	}
	return &replies, nil
}

func (svc *CommunityService) CreateReply(ctx goContext.Context, postID, content string) (*dto.Reply, error) {
	req := dto.CreateReplyRequest{Content: content}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var reply dto.Reply
	if err := svc.apiSvc.Post(ctx, "/api/community/posts/"+postID+"/replies", req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (svc *CommunityService) LikeReply(ctx goContext.Context, replyID string) (*dto.LikeResponse, error) {
	var like dto.LikeResponse
	if err := svc.apiSvc.Post(ctx, "/api/community/replies/"+replyID+"/like", nil, &like); err != nil {
		return nil, err
	}
	return &like, nil
}
