package scoreio

// SampleLog is a small but complete mjscore log: one game of five hands
// between あなた, 下家, 対面 and 上家. Tests across packages evaluate
// statistics against it, so the balances and action histories below are
// load-bearing.
const SampleLog = `===== 東風戦:ランキング卓 64卓 開始 2016/01/01 00:43 =====
持点25000 [1]あなた R1500 [2]下家 R1500 [3]対面 R1500 [4]上家 R1500
東1局 0本場(リーチ0) あなた +2600 対面 -2600
40符 二飜ロン 断ヤオ リーチ
[1東]2m3m4m5m6m7m3p4p5p5p6s7s8s
[2南]1m9m1p9p1s9s東南西北白発中
[3西]2p3p4p5p6p7p2s3s4s8m8m東東
[4北]1m2m3m7p8p9p1s2s3s5s6s7s9s
[表ドラ]8p [裏ドラ]2s
* 1G5s 1d9m 2G1z 2d9p 3G6m 3d1z 4G7m 4d9s
* 1G2p 1R 1d2p 2G4z 2d4z 3G8p 3d8p 4G3m 4d7m
* 1G6s 1d6s 2G5z 2d5z 3G7p 3d7p 4G2s 4d2s
* 1G9s 1d9s 2G6z 2d6z 3G5p 3d5p 4G4m 4d4m
* 1G1s 1d1s 2G7z 2d7z 3G3p 3d3p 4G5m 4d5m
* 1G8s 1d8s 2G2z 2d2z 3G2m 3d2m 1A
東2局 0本場(リーチ0) あなた +1500 下家 +1500 対面 -1500 上家 -1500
流局
[1東]1m2m3m4m5m6m7m8m9m1p2p3p4p
[2南]2m3m4m5m6m7m8m9m1s2s3s4s5s
[3西]1p2p3p4p5p6p7p8p9p1m2m3m4m
[4北]1s2s3s4s5s6s7s8s9s1p2p3p4p
[表ドラ]5m
* 1G5p 1d5p 2G6s 2d6s 3G5m 3d5m 4G5p 4d5p
* 1N白白白 1d4p 2G7s 2d7s 3G6m 3d6m 4G6p 4d6p
東2局 1本場(リーチ0)
四風連打
[1東]1m2m3m4m5m6m7m8m9m1p2p3p東
[2南]2m3m4m5m6m7m8m9m1s2s3s4s南
[3西]1p2p3p4p5p6p7p8p9p1m2m3m西
[4北]1s2s3s4s5s6s7s8s9s1p2p3p北
[表ドラ]9m
* 1G東 1d東 2G南 2d南 3G西 3d西 4G北 4d北
東3局 0本場(リーチ0) あなた -1000 下家 +1000
30符 一飜ロン 役牌
[1東]2m3m4m6m7m8m4p5p6p7p3s4s7s
[2南]1m1m5m6m7m2p3p4p6s7s8s白白
[3西]1p2p3p7p8p9p1s2s3s5s6s東東
[4北]4m5m6m2p2p5p6p7p4s5s6s9s9s
[表ドラ]3m
* 2G白 2d1m 3G4s 3d東 4G8s 4d9s 1G9p 1d9p
* 2G1m 2d1m 3G5p 3d5p 4G3s 4d3s 1G7p 1d7p 2A
東4局 0本場(リーチ0) あなた -4000 下家 -4000 対面 -4000 上家 +12000
満貫ツモ 断ヤオ 三色同順 ドラ2
[1東]1m2m3m4m5m6m7m8m9m1p2p3p4p
[2南]2m3m4m5m6m7m8m9m1s2s3s4s5s
[3西]1p2p3p4p5p6p7p8p9p1m2m3m4m
[4北]2m3m4m2p3p4p2s3s4s5s6s7s8s
[表ドラ]7s
* 4G8m 4d8m 1G2s 1d2s 2G3z 2d3z 3G4p 3d4p 4G8s 4A
--- 試合結果 ---
1位 上家 +54
2位 あなた +7
3位 下家 -18
4位 対面 -43
----- 終了 2016/01/01 00:47 -----
`
