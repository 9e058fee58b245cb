package models

// PacketType identifies a network packet on the wire. Values are serialized
// verbatim, so they must match what peers and the collector expect.
type PacketType string

const (
	PacketUnknown     PacketType = "UNKNOWN"
	PacketAudioData   PacketType = "AUDIO_DATA"
	PacketGrpAffReq   PacketType = "GRP_AFF_REQ"
	PacketGrpAffRsp   PacketType = "GRP_AFF_RSP"
	PacketGrpVchReq   PacketType = "GRP_VCH_REQ"
	PacketGrpVchRsp   PacketType = "GRP_VCH_RSP"
	PacketGrpVchRls   PacketType = "GRP_VCH_RLS"
	PacketURegReq     PacketType = "U_REG_REQ"
	PacketURegRsp     PacketType = "U_REG_RSP"
	PacketUDeRegReq   PacketType = "U_DE_REG_REQ"
	PacketUDeRegRsp   PacketType = "U_DE_REG_RSP"
	PacketEmrgAlrmReq PacketType = "EMRG_ALRM_REQ"
	PacketEmrgAlrmRsp PacketType = "EMRG_ALRM_RSP"
	PacketCallAlrt    PacketType = "CALL_ALRT"
	PacketCallAlrtReq PacketType = "CALL_ALRT_REQ"
	PacketStsBcast    PacketType = "STS_BCAST"
	PacketSiteBcast   PacketType = "SITE_BCAST"
)

// ResponseType is the network's answer to a request packet. The zero value
// is treated as ResponseUnknown when shaping reports.
type ResponseType string

const (
	ResponseUnknown ResponseType = "UNKNOWN"
	ResponseGrant   ResponseType = "GRANT"
	ResponseDeny    ResponseType = "DENY"
	ResponseFail    ResponseType = "FAIL"
	ResponseRefuse  ResponseType = "REFUSE"
)
