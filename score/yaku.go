package score

// Yaku identifies a scoring pattern by the name it carries in mjscore.txt.
type Yaku int

const (
	YakuRiichi Yaku = iota // リーチ
	YakuIppatsu
	YakuTsumo // 門前清模和
	YakuTanyao
	YakuPinfu
	YakuIipeikou
	YakuYakuhai
	YakuRinshan
	YakuChankan
	YakuHaitei
	YakuHoutei
	YakuDoubleRiichi
	YakuChiitoitsu
	YakuChanta
	YakuIttsu
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuSankantsu
	YakuToitoi
	YakuSanankou
	YakuShousangen
	YakuHonroutou
	YakuRyanpeikou
	YakuJunchan
	YakuHonitsu
	YakuChinitsu

	// Limit hands.
	YakuTenhou
	YakuChiihou
	YakuDaisangen
	YakuSuuankou
	YakuTsuuiisou
	YakuRyuuiisou
	YakuChinroutou
	YakuKokushi
	YakuDaisuushii
	YakuShousuushii
	YakuSuukantsu
	YakuChuuren

	numYaku
)

// yakuNames holds the log spellings, indexed by Yaku.
var yakuNames = [numYaku]string{
	"リーチ",
	"一発",
	"門前清模和",
	"断ヤオ",
	"平和",
	"一盃口",
	"役牌",
	"嶺上開花",
	"槍槓",
	"海底撈月",
	"河底撈魚",
	"ダブルリーチ",
	"七対子",
	"混全帯ヤオ九",
	"一気通貫",
	"三色同順",
	"三色同刻",
	"三槓子",
	"対々和",
	"三暗刻",
	"小三元",
	"混老頭",
	"二盃口",
	"純全帯ヤオ九",
	"混一色",
	"清一色",
	"天和",
	"地和",
	"大三元",
	"四暗刻",
	"字一色",
	"緑一色",
	"清老頭",
	"国士無双",
	"大四喜",
	"小四喜",
	"四槓子",
	"九蓮宝燈",
}

// hanValues holds {closed, open} han per yaku. Zero in the open column
// means the yaku only exists in a closed hand.
var hanValues = [numYaku][2]int{
	YakuRiichi:         {1, 0},
	YakuIppatsu:        {1, 0},
	YakuTsumo:          {1, 0},
	YakuTanyao:         {1, 1},
	YakuPinfu:          {1, 0},
	YakuIipeikou:       {1, 0},
	YakuYakuhai:        {1, 1},
	YakuRinshan:        {1, 1},
	YakuChankan:        {1, 1},
	YakuHaitei:         {1, 1},
	YakuHoutei:         {1, 1},
	YakuDoubleRiichi:   {2, 0},
	YakuChiitoitsu:     {2, 0},
	YakuChanta:         {2, 1},
	YakuIttsu:          {2, 1},
	YakuSanshokuDoujun: {2, 1},
	YakuSanshokuDoukou: {2, 2},
	YakuSankantsu:      {2, 2},
	YakuToitoi:         {2, 2},
	YakuSanankou:       {2, 2},
	YakuShousangen:     {2, 2},
	YakuHonroutou:      {2, 2},
	YakuRyanpeikou:     {3, 0},
	YakuJunchan:        {3, 2},
	YakuHonitsu:        {3, 2},
	YakuChinitsu:       {6, 5},
	YakuTenhou:         {13, 13},
	YakuChiihou:        {13, 13},
	YakuDaisangen:      {13, 13},
	YakuSuuankou:       {13, 13},
	YakuTsuuiisou:      {13, 13},
	YakuRyuuiisou:      {13, 13},
	YakuChinroutou:     {13, 13},
	YakuKokushi:        {13, 13},
	YakuDaisuushii:     {13, 13},
	YakuShousuushii:    {13, 13},
	YakuSuukantsu:      {13, 13},
	YakuChuuren:        {13, 13},
}

var yakuByName = func() map[string]Yaku {
	m := make(map[string]Yaku, numYaku)
	for y := Yaku(0); y < numYaku; y++ {
		m[yakuNames[y]] = y
	}
	return m
}()

func (y Yaku) String() string {
	if y < 0 || y >= numYaku {
		return "yaku(?)"
	}
	return yakuNames[y]
}

// HanValue returns the han the yaku is worth, depending on whether the
// winning hand is closed.
func (y Yaku) HanValue(closed bool) int {
	if y < 0 || y >= numYaku {
		return 0
	}
	if closed {
		return hanValues[y][0]
	}
	return hanValues[y][1]
}

// YakuByName looks up a yaku id by its log spelling.
func YakuByName(name string) (Yaku, bool) {
	y, ok := yakuByName[name]
	return y, ok
}

// AllYaku returns every known yaku id in declaration order.
func AllYaku() []Yaku {
	ys := make([]Yaku, numYaku)
	for y := Yaku(0); y < numYaku; y++ {
		ys[y] = y
	}
	return ys
}
